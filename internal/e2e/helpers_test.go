package e2e

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"seatd/internal/floorplan"
	"seatd/internal/httpapi"
	"seatd/internal/manager"
)

// newServerForPlan writes a floor plan file, loads it and serves a fresh
// manager over httptest. The returned MemoryPublisher sees every event.
func newServerForPlan(t *testing.T, plan string) (*httptest.Server, *manager.Manager, *manager.MemoryPublisher) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(p, []byte(plan), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	tbls, err := floorplan.LoadFile(p)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	m := manager.New(tbls)
	mp, err := manager.NewMetricsPublisher(prometheus.NewRegistry(), m)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	mem := manager.NewMemoryPublisher()
	m.SetEventPublisher(manager.MultiPublisher{mp, mem})
	srv := httptest.NewServer(httpapi.NewMux(m))
	t.Cleanup(srv.Close)
	return srv, m, mem
}

func postSize(t *testing.T, base, path string, size int) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]int{"size": size})
	resp, err := http.Post(base+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Errorf("post %s: %v", path, err)
		return nil
	}
	return resp
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func decodeBody(resp *http.Response, v any) error {
	if resp == nil {
		return errors.New("no response")
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
