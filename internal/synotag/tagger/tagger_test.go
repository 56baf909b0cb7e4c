//nolint:errcheck,gosec,revive // Test file with acceptable error handling patterns
package tagger

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/synotag/synotag/internal/synotag/config"
	"github.com/synotag/synotag/internal/synotag/synofoto"
)

// fakeClient is a scriptable tagger.Client for batch tests
type fakeClient struct {
	items      map[int][]synofoto.Item
	tags       map[string]*synofoto.Tag
	listErr    map[int]error
	tagErr     map[string]error
	addErr     error
	addedItems map[int][]int // tag id -> item ids
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		items:      make(map[int][]synofoto.Item),
		tags:       make(map[string]*synofoto.Tag),
		listErr:    make(map[int]error),
		tagErr:     make(map[string]error),
		addedItems: make(map[int][]int),
	}
}

func (f *fakeClient) ListItemsRecursive(folderID int) ([]synofoto.Item, error) {
	if err := f.listErr[folderID]; err != nil {
		return nil, err
	}
	return f.items[folderID], nil
}

func (f *fakeClient) GetTagByName(name string) (*synofoto.Tag, error) {
	if err := f.tagErr[name]; err != nil {
		return nil, err
	}
	if tag, ok := f.tags[name]; ok {
		return tag, nil
	}
	return nil, errTagMissing
}

func (f *fakeClient) AddTags(itemIDs []int, tagIDs []int) error {
	if f.addErr != nil {
		return f.addErr
	}
	for _, tagID := range tagIDs {
		f.addedItems[tagID] = append(f.addedItems[tagID], itemIDs...)
	}
	return nil
}

var errTagMissing = &synofoto.APIError{Op: "get tag", Code: 404}

func photos(ids ...int) []synofoto.Item {
	items := make([]synofoto.Item, len(ids))
	for i, id := range ids {
		items[i] = synofoto.Item{ID: id, Type: "photo"}
	}
	return items
}

func TestApply_TagsEveryTeam(t *testing.T) {
	client := newFakeClient()
	client.items[3048] = photos(101, 102)
	client.items[3037] = photos(103)
	client.tags["U20F"] = &synofoto.Tag{ID: 7, Name: "U20F"}
	client.tags["U18M-1"] = &synofoto.Tag{ID: 8, Name: "U18M-1"}

	mapping := &config.TeamMapping{Teams: map[string]int{
		"U20F":   3048,
		"U18M-1": 3037,
	}}

	res := Apply(client, mapping)

	if res.Processed != 2 {
		t.Errorf("Processed = %d, want 2", res.Processed)
	}
	if res.Tagged != 3 {
		t.Errorf("Tagged = %d, want 3", res.Tagged)
	}
	if len(res.Failed) != 0 {
		t.Errorf("Failed = %v, want none", res.Failed)
	}

	if diff := cmp.Diff([]int{101, 102}, client.addedItems[7]); diff != "" {
		t.Errorf("tag 7 items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{103}, client.addedItems[8]); diff != "" {
		t.Errorf("tag 8 items mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_ContinuesAfterTeamFailure(t *testing.T) {
	client := newFakeClient()
	client.items[3048] = photos(101)
	client.items[3037] = photos(103)
	client.tags["U20F"] = &synofoto.Tag{ID: 7, Name: "U20F"}
	client.tags["U18M-1"] = &synofoto.Tag{ID: 8, Name: "U18M-1"}
	client.listErr[3037] = &synofoto.APIError{Op: "list items", Code: 642}

	mapping := &config.TeamMapping{Teams: map[string]int{
		"U20F":   3048,
		"U18M-1": 3037,
	}}

	res := Apply(client, mapping)

	if res.Processed != 1 {
		t.Errorf("Processed = %d, want 1", res.Processed)
	}
	if diff := cmp.Diff([]string{"U18M-1"}, res.Failed); diff != "" {
		t.Errorf("Failed mismatch (-want +got):\n%s", diff)
	}

	// The failing team must not prevent the other team's tagging.
	if diff := cmp.Diff([]int{101}, client.addedItems[7]); diff != "" {
		t.Errorf("tag 7 items mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_MissingTagFailsOnlyThatTeam(t *testing.T) {
	client := newFakeClient()
	client.items[3048] = photos(101)
	client.items[3037] = photos(103)
	client.tags["U18M-1"] = &synofoto.Tag{ID: 8, Name: "U18M-1"}

	mapping := &config.TeamMapping{Teams: map[string]int{
		"U20F":   3048,
		"U18M-1": 3037,
	}}

	res := Apply(client, mapping)

	if diff := cmp.Diff([]string{"U20F"}, res.Failed); diff != "" {
		t.Errorf("Failed mismatch (-want +got):\n%s", diff)
	}
	if res.Processed != 1 {
		t.Errorf("Processed = %d, want 1", res.Processed)
	}
}

func TestApply_SkipsEmptyTeamWithoutWrite(t *testing.T) {
	client := newFakeClient()
	client.tags["U20F"] = &synofoto.Tag{ID: 7, Name: "U20F"}

	mapping := &config.TeamMapping{Teams: map[string]int{"U20F": 3048}}

	res := Apply(client, mapping)

	if res.Processed != 1 {
		t.Errorf("Processed = %d, want 1", res.Processed)
	}
	if res.Tagged != 0 {
		t.Errorf("Tagged = %d, want 0", res.Tagged)
	}
	if len(client.addedItems) != 0 {
		t.Errorf("AddTags called for an empty team: %v", client.addedItems)
	}
}

func TestApply_ProcessesTeamsInSortedOrder(t *testing.T) {
	mapping := &config.TeamMapping{Teams: map[string]int{
		"U20F":  3048,
		"1LNM":  2977,
		"U12-1": 3002,
	}}

	want := []string{"1LNM", "U12-1", "U20F"}
	if diff := cmp.Diff(want, mapping.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
