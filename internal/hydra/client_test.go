package hydra

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
)

// roundTripFunc lets tests answer requests without a listener.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestClient_GetBuildAndEval(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		switch r.URL.Path {
		case "/build/2":
			_, _ = io.WriteString(w, `{"id": 2, "jobsetevals": [1809, 1808]}`)
		case "/eval/1809":
			_, _ = io.WriteString(w, `{"jobsetevalinputs": {
				"nixpkgs": {"uri": "https://github.com/NixOS/nixpkgs.git", "type": "git", "revision": "abc123"},
				"officialRelease": {"type": "boolean", "value": "false"}
			}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", srv.Client())

	build, err := client.GetBuild(context.Background(), "2")
	if err != nil {
		t.Fatalf("GetBuild failed: %v", err)
	}
	evalID, err := build.FirstEval()
	if err != nil {
		t.Fatalf("FirstEval failed: %v", err)
	}
	if evalID != 1809 {
		t.Errorf("FirstEval = %d, want 1809", evalID)
	}

	eval, err := client.GetEval(context.Background(), evalID)
	if err != nil {
		t.Fatalf("GetEval failed: %v", err)
	}

	in, ok := eval.Input("nixpkgs")
	if !ok {
		t.Fatal("nixpkgs input missing")
	}
	if in.URI != "https://github.com/NixOS/nixpkgs.git" || in.Revision != "abc123" || in.Type != "git" {
		t.Errorf("Input = %+v", in)
	}

	if _, ok := eval.Input("officialRelease"); !ok {
		t.Error("non-git inputs should decode too")
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		resp     *http.Response
		err      error
		wantCode int
	}{
		{"network failure", nil, io.ErrUnexpectedEOF, errors.ExitAPIError},
		{"not found", jsonResponse(http.StatusNotFound, "not found"), nil, errors.ExitAPIError},
		{"server error", jsonResponse(http.StatusInternalServerError, ""), nil, errors.ExitAPIError},
		{"html instead of json", jsonResponse(http.StatusOK, "<html></html>"), nil, errors.ExitMalformedResponse},
		{"wrong type", jsonResponse(http.StatusOK, `{"jobsetevals": "1"}`), nil, errors.ExitMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
				return tt.resp, tt.err
			})}

			_, err := NewClient("https://hydra.example.org", httpClient).GetBuild(context.Background(), "2")
			if err == nil {
				t.Fatal("GetBuild should fail")
			}
			if code := errors.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err: %v)", code, tt.wantCode, err)
			}
		})
	}
}

func TestClient_GetBuild_InvalidID(t *testing.T) {
	called := false
	httpClient := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{}`), nil
	})}

	_, err := NewClient("https://hydra.example.org", httpClient).GetBuild(context.Background(), "../eval/1")
	if !errors.HasCode(err, errors.ExitMalformedResponse) {
		t.Errorf("err = %v, want malformed response", err)
	}
	if called {
		t.Error("no request should be sent for an invalid build id")
	}
}

func TestBuild_FirstEval_Empty(t *testing.T) {
	b := &Build{}
	if _, err := b.FirstEval(); err == nil {
		t.Error("FirstEval should fail without evaluations")
	}
}
