package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// RunFile runs every scenario in path, in order, as subtests.
func RunFile(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("%v", err)
	}
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, handler, s)
		})
	}
}

// RunDir runs every *.json file in dir, files in name order.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}
	for _, path := range entries {
		RunFile(t, handler, path)
	}
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	payload, err := s.requestPayload()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code)

	expected, err := s.expectedBody()
	if err != nil {
		t.Errorf("[%s] read response file: %v", s.Name, err)
	} else {
		AssertJSONBody(t, s, expected, rec.Body.Bytes())
	}

	for _, fragment := range s.ResponseContains {
		if !strings.Contains(rec.Body.String(), fragment) {
			t.Errorf("[%s] response does not contain %q\nbody: %s", s.Name, fragment, rec.Body.String())
		}
	}
}
