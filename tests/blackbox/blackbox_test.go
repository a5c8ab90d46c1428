package blackbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// findFreePort picks an available TCP port on localhost.
func findFreePort(t *testing.T) (int, func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	var port int
	fmt.Sscanf(portStr, "%d", &port)
	return port, func() { _ = ln.Close() }
}

func projectRootFromThisFile(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file: <root>/tests/blackbox/blackbox_test.go
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("blackbox builds the binary; skipped in -short mode")
	}
	root := projectRootFromThisFile(t)
	binPath := filepath.Join(t.TempDir(), "seatd")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/seatd")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build failed: %v\n%s", err, string(out))
	}
	return binPath
}

type serverProc struct {
	cmd  *exec.Cmd
	base string // http base URL, e.g. http://127.0.0.1:18080
}

func startServer(t *testing.T, bin string, port int, extra ...string) *serverProc {
	t.Helper()
	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	args := append([]string{"serve", "--addr", fmt.Sprintf("127.0.0.1:%d", port)}, extra...)
	cmd := exec.Command(bin, args...)
	// keep a stray ./.env or SEATD_* from leaking into the run
	cmd.Dir = t.TempDir()
	cmd.Env = []string{"PATH=" + os.Getenv("PATH")}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("start server: %v", err)
	}
	t.Cleanup(func() { _ = cmd.Process.Kill(); _, _ = cmd.Process.Wait() })

	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not become healthy in time")
		}
		time.Sleep(50 * time.Millisecond)
	}
	return &serverProc{cmd: cmd, base: base}
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func postJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func TestBlackbox_Flow(t *testing.T) {
	bin := buildBinary(t)
	port, release := findFreePort(t)
	release()
	sp := startServer(t, bin, port, "--tables", "4,2")

	resp, body := get(t, sp.base+"/readyz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/readyz %d %s", resp.StatusCode, string(body))
	}

	resp, body = get(t, sp.base+"/tables")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/tables %d %s", resp.StatusCode, string(body))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("/tables content-type=%s", ct)
	}
	var tablesResp struct {
		Tables []struct {
			Capacity int `json:"capacity"`
		} `json:"tables"`
	}
	if err := json.Unmarshal(body, &tablesResp); err != nil {
		t.Fatalf("/tables json: %v body=%s", err, string(body))
	}
	if len(tablesResp.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tablesResp.Tables))
	}

	resp, body = postJSON(t, sp.base+"/arrivals", []byte(`{"size":3}`))
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte(`"seated":true`)) {
		t.Fatalf("/arrivals %d %s", resp.StatusCode, string(body))
	}

	resp, body = get(t, sp.base+"/tables/4/occupied")
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte(`"occupied":true`)) {
		t.Fatalf("/tables/4/occupied %d %s", resp.StatusCode, string(body))
	}

	resp, body = get(t, sp.base+"/status")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/status %d %s", resp.StatusCode, string(body))
	}
	var st struct {
		SeatedTotal uint64 `json:"seated_total"`
	}
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("/status json: %v body=%s", err, string(body))
	}
	if st.SeatedTotal != 1 {
		t.Fatalf("seated_total=%d want 1", st.SeatedTotal)
	}

	resp, body = get(t, sp.base+"/metrics")
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte("seatd_manager_events_total")) {
		t.Fatalf("/metrics %d missing manager counters", resp.StatusCode)
	}
}

func TestBlackbox_InvalidSize_400(t *testing.T) {
	bin := buildBinary(t)
	port, release := findFreePort(t)
	release()
	sp := startServer(t, bin, port, "--tables", "2")

	resp, body := postJSON(t, sp.base+"/arrivals", []byte(`{"size":0}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body=%s", resp.StatusCode, string(body))
	}
}

func TestBlackbox_FloorPlanFile(t *testing.T) {
	bin := buildBinary(t)
	plan := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(plan, []byte("tables: [6, 6, 2]\n"), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	port, release := findFreePort(t)
	release()
	sp := startServer(t, bin, port, "--floor-plan", plan)

	resp, body := get(t, sp.base+"/lookup?size=5")
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte(`"capacity":6`)) {
		t.Fatalf("/lookup size=5: %d %s", resp.StatusCode, string(body))
	}
	resp, body = get(t, sp.base+"/lookup?size=4")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("/lookup size=4: %d %s", resp.StatusCode, string(body))
	}
}
