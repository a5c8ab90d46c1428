//go:build !swagger

package httpapi

import (
	"net/http"
	"testing"
)

func TestSwaggerDisabledByDefault(t *testing.T) {
	h, _ := newTestMux(4)
	if w := get(h, "/swagger/doc.json"); w.Code != http.StatusNotFound {
		t.Fatalf("doc.json status=%d want 404 without the swagger tag", w.Code)
	}
}
