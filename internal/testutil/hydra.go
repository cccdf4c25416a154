package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Request is a request received by FakeHydra.
type Request struct {
	Path   string
	Accept string
}

// FakeHydra is an in-process Hydra API serving canned responses.
type FakeHydra struct {
	server *httptest.Server

	mu       sync.Mutex
	bodies   map[string][]byte
	statuses map[string]int
	requests []Request
}

// NewFakeHydra starts a FakeHydra that is closed when the test ends.
// Unregistered paths answer 404.
func NewFakeHydra(t *testing.T) *FakeHydra {
	t.Helper()

	h := &FakeHydra{
		bodies:   make(map[string][]byte),
		statuses: make(map[string]int),
	}
	h.server = httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.server.Close)
	return h
}

func (h *FakeHydra) serve(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.requests = append(h.requests, Request{Path: r.URL.Path, Accept: r.Header.Get("Accept")})
	body, ok := h.bodies[r.URL.Path]
	status, hasStatus := h.statuses[r.URL.Path]
	h.mu.Unlock()

	if hasStatus {
		w.WriteHeader(status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// URL returns the base URL of the server.
func (h *FakeHydra) URL() string {
	return h.server.URL
}

// Client returns an HTTP client for the server.
func (h *FakeHydra) Client() *http.Client {
	return h.server.Client()
}

// AddResponse serves body at path.
func (h *FakeHydra) AddResponse(path string, body []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bodies[path] = body
}

// AddFixture serves the named fixture at path.
func (h *FakeHydra) AddFixture(path, fixture string) {
	data, err := LoadFixture(fixture)
	if err != nil {
		panic("testutil: missing fixture " + fixture)
	}
	h.AddResponse(path, data)
}

// AddStatus answers path with an empty body and status.
func (h *FakeHydra) AddStatus(path string, status int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses[path] = status
}

// Requests returns the requests received so far.
func (h *FakeHydra) Requests() []Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Request(nil), h.requests...)
}
