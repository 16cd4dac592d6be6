package testutils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// CapturedRequest records what the test server saw for the last request.
type CapturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Query  url.Values
	Body   string
}

// CaptureServer starts an httptest server that records each incoming request
// into the returned CapturedRequest and answers with the given status and a
// canned JSON body. The server is torn down with the test.
func CaptureServer(t testing.TB, status int, responseBody string) (*httptest.Server, *CapturedRequest) {
	captured := &CapturedRequest{}
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Could not read request body: %s", err)
		}
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Header = r.Header.Clone()
		captured.Query = r.URL.Query()
		captured.Body = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, responseBody)
	}))
	t.Cleanup(testServer.Close)
	return testServer, captured
}
