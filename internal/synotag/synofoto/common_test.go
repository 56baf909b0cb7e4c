package synofoto

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockServer creates a test HTTP server that simulates the Synology
// Photos web API. The vendor multiplexes every operation over three CGI
// entry points and dispatches on the api and method query parameters,
// so handlers are keyed by "<api>/<method>".
// This is shared across all test files in the synofoto package.
func mockServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	if handlers == nil {
		handlers = make(map[string]http.HandlerFunc)
	}
	if _, ok := handlers["SYNO.API.Auth/login"]; !ok {
		handlers["SYNO.API.Auth/login"] = loginHandler("test-sid")
	}

	dispatch := func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("api") + "/" + r.URL.Query().Get("method")
		if handler, ok := handlers[key]; ok {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"success": false, "error": {"code": 119}}`)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/auth.cgi", dispatch)
	mux.HandleFunc("/webapi/query.cgi", dispatch)
	mux.HandleFunc("/webapi/entry.cgi", dispatch)
	return httptest.NewServer(mux)
}

// loginHandler returns a handler that answers a login with the given sid
func loginHandler(sid string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"success": true, "data": {"sid": %q}}`, sid)
	}
}

// listHandler returns a handler that answers a list call with the given
// JSON array of objects
func listHandler(jsonList string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"success": true, "data": {"list": %s}}`, jsonList)
	}
}

// failureHandler returns a handler that answers with a vendor failure
// envelope carrying the given error code
func failureHandler(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"success": false, "error": {"code": %d}}`, code)
	}
}

// testClient creates a logged-in client against the mock server
func testClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	api, err := Init(server.URL, &Creds{Username: "testuser", Password: "testpass"})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return api
}
