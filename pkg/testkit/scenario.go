// Package testkit drives REST API tests from JSON scenario files.
//
// A scenario file holds one scenario object or an array of them. Arrays
// run in order against the same handler, so later steps see the writes of
// earlier ones:
//
//	[
//	  {"name": "seed", "requestMethod": "POST", "requestUrl": "/api/products/seed",
//	   "expectedCode": 200, "responseBody": {"seeded": true, "count": 4}},
//	  {"name": "bad order", "requestMethod": "POST", "requestUrl": "/api/orders",
//	   "requestFileName": "order_mismatch_req.json", "expectedCode": 400}
//	]
//
// Bodies are given inline (requestBody/responseBody) or as files resolved
// relative to the scenario file (requestFileName/responseFileName).
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario describes one request and what it must produce.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod   string            `json:"requestMethod"`
	RequestURL      string            `json:"requestUrl"`
	RequestFileName string            `json:"requestFileName"`
	RequestBody     json.RawMessage   `json:"requestBody"`
	RawRequestBody  *string           `json:"rawRequestBody"` // sent verbatim, for malformed payloads
	Headers         map[string]string `json:"headers"`

	ExpectedCode     int             `json:"expectedCode"`
	ResponseFileName string          `json:"responseFileName"`
	ResponseBody     json.RawMessage `json:"responseBody"`
	ResponseContains []string        `json:"responseContains"`

	dir string
}

// LoadScenarios reads a scenario file holding an object or an array.
func LoadScenarios(path string) ([]*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var scenarios []*Scenario
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(data, &scenarios)
	} else {
		var s Scenario
		err = json.Unmarshal(data, &s)
		scenarios = []*Scenario{&s}
	}
	if err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: invalid scenario %d in %q: %w", i, abs, err)
		}
		s.dir = filepath.Dir(abs)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	if s.RequestFileName != "" && (len(s.RequestBody) > 0 || s.RawRequestBody != nil) {
		return fmt.Errorf("use only one of requestFileName, requestBody, rawRequestBody")
	}
	if s.ResponseFileName != "" && len(s.ResponseBody) > 0 {
		return fmt.Errorf("use only one of responseFileName, responseBody")
	}
	return nil
}

// requestPayload returns the bytes to send, or nil for no body.
func (s *Scenario) requestPayload() ([]byte, error) {
	switch {
	case s.RawRequestBody != nil:
		return []byte(*s.RawRequestBody), nil
	case len(s.RequestBody) > 0:
		return s.RequestBody, nil
	case s.RequestFileName != "":
		return os.ReadFile(s.resolve(s.RequestFileName))
	}
	return nil, nil
}

// expectedBody returns the expected response JSON, or nil when unchecked.
func (s *Scenario) expectedBody() ([]byte, error) {
	switch {
	case len(s.ResponseBody) > 0:
		return s.ResponseBody, nil
	case s.ResponseFileName != "":
		return os.ReadFile(s.resolve(s.ResponseFileName))
	}
	return nil, nil
}

func (s *Scenario) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
