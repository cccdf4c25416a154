package hydra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// BuildID identifies a Hydra build. hydra-check emits it as a string; a bare
// number is accepted too.
type BuildID string

func (id *BuildID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = BuildID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("build_id must be a string or number, got %s", data)
	}
	*id = BuildID(n.String())
	return nil
}

// Job is one build attempt reported by hydra-check.
type Job struct {
	Success bool    `json:"success"`
	BuildID BuildID `json:"build_id"`
	Status  string  `json:"status,omitempty"`
	Name    string  `json:"name,omitempty"`
}

// JobList is the list of builds reported under one key.
type JobList struct {
	Key  string
	Jobs []Job
}

// Report is the decoded hydra-check output in document order.
type Report []JobList

// Candidate is a successful job together with the key it was reported under.
type Candidate struct {
	Key string
	Job Job
}

// ParseReport decodes hydra-check JSON output. Key order is preserved so that
// "first successful job" means first in the tool's output.
func ParseReport(data []byte) (Report, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var report Report
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}

		var jobs []Job
		if err := dec.Decode(&jobs); err != nil {
			return nil, fmt.Errorf("jobs for %q: %w", key, err)
		}
		report = append(report, JobList{Key: key, Jobs: jobs})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return report, nil
}

// Successful returns every successful job in document order.
func (r Report) Successful() []Candidate {
	var out []Candidate
	for _, list := range r {
		for _, job := range list.Jobs {
			if job.Success {
				out = append(out, Candidate{Key: list.Key, Job: job})
			}
		}
	}
	return out
}

// FirstSuccessful returns the first successful job in document order.
// Ordering among successful jobs is whatever hydra-check emitted, which is
// not guaranteed to be most recent first.
func (r Report) FirstSuccessful() (Candidate, bool) {
	for _, list := range r {
		for _, job := range list.Jobs {
			if job.Success {
				return Candidate{Key: list.Key, Job: job}, true
			}
		}
	}
	return Candidate{}, false
}

// String renders the build id for display.
func (id BuildID) String() string {
	return string(id)
}

// Valid reports whether the id is a positive decimal integer.
func (id BuildID) Valid() bool {
	n, err := strconv.ParseUint(string(id), 10, 64)
	return err == nil && n > 0
}
