package hydra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
)

// Build is the subset of GET /build/<id> that pinning needs.
type Build struct {
	JobsetEvals []uint64 `json:"jobsetevals"`
}

// Input is one evaluation input. Any field may be missing.
type Input struct {
	URI      string `json:"uri,omitempty"`
	Type     string `json:"type,omitempty"`
	Revision string `json:"revision,omitempty"`
}

// Eval is the subset of GET /eval/<id> that pinning needs.
type Eval struct {
	JobsetEvalInputs map[string]Input `json:"jobsetevalinputs"`
}

// Client queries the Hydra JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the Hydra instance at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetBuild fetches build metadata.
func (c *Client) GetBuild(ctx context.Context, id BuildID) (*Build, error) {
	if !id.Valid() {
		return nil, errors.MalformedResponse("hydra-check", fmt.Errorf("invalid build_id %q", id))
	}

	var build Build
	if err := c.get(ctx, "/build/"+id.String(), &build); err != nil {
		return nil, err
	}
	return &build, nil
}

// GetEval fetches evaluation metadata.
func (c *Client) GetEval(ctx context.Context, id uint64) (*Eval, error) {
	var eval Eval
	if err := c.get(ctx, "/eval/"+strconv.FormatUint(id, 10), &eval); err != nil {
		return nil, err
	}
	return &eval, nil
}

// FirstEval returns the first evaluation the build belongs to.
func (b *Build) FirstEval() (uint64, error) {
	if len(b.JobsetEvals) == 0 {
		return 0, fmt.Errorf("build belongs to no evaluations")
	}
	return b.JobsetEvals[0], nil
}

// Input returns the named evaluation input.
func (e *Eval) Input(name string) (Input, bool) {
	in, ok := e.JobsetEvalInputs[name]
	return in, ok
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	url := c.baseURL + path
	logging.Debug("hydra request", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return errors.APIError(path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.APIError(path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.APIError(path, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.APIError(path, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.MalformedResponse("hydra "+path, err)
	}

	return nil
}
