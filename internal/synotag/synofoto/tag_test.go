//nolint:errcheck,gosec,revive // Test file with acceptable error handling patterns
package synofoto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	synoerrors "github.com/synotag/synotag/internal/synotag/errors"
)

const teamTagList = `[
	{"id": 7, "name": "U20F", "item_count": 42},
	{"id": 8, "name": "U18M-1", "item_count": 17},
	{"id": 9, "name": "U18M-2", "item_count": 0}
]`

func TestListTags(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"SYNO.Foto.Browse.GeneralTag/list": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("_sid") != "test-sid" {
				t.Errorf("_sid = %q, want %q", q.Get("_sid"), "test-sid")
			}
			listHandler(teamTagList)(w, r)
		},
	})
	defer server.Close()

	api := testClient(t, server)

	tags, err := api.ListTags()
	if err != nil {
		t.Fatalf("ListTags() failed: %v", err)
	}

	want := []Tag{
		{ID: 7, Name: "U20F", ItemCount: 42},
		{ID: 8, Name: "U18M-1", ItemCount: 17},
		{ID: 9, Name: "U18M-2"},
	}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("ListTags() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetTagByName_Found(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"SYNO.Foto.Browse.GeneralTag/list": listHandler(teamTagList),
	})
	defer server.Close()

	api := testClient(t, server)

	tag, err := api.GetTagByName("U18M-1")
	if err != nil {
		t.Fatalf("GetTagByName() failed: %v", err)
	}
	if tag.ID != 8 {
		t.Errorf("ID = %d, want 8", tag.ID)
	}
}

func TestGetTagByName_NotFound(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"SYNO.Foto.Browse.GeneralTag/list": listHandler(teamTagList),
	})
	defer server.Close()

	api := testClient(t, server)

	_, err := api.GetTagByName("U16F")
	if !errors.Is(err, synoerrors.ErrTagNotFound) {
		t.Errorf("GetTagByName() error = %v, want ErrTagNotFound", err)
	}
}

func TestGetTagByName_ExactMatchOnly(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"SYNO.Foto.Browse.GeneralTag/list": listHandler(teamTagList),
	})
	defer server.Close()

	api := testClient(t, server)

	if _, err := api.GetTagByName("U18M"); !errors.Is(err, synoerrors.ErrTagNotFound) {
		t.Errorf("prefix name should not match, got error %v", err)
	}
}
