package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCache_OversizedBodyIsNotStored(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 10}

	body := strings.Repeat("x", 25)
	if _, err := cw.Write([]byte(body)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// The client must always receive the full response.
	if got := rec.Body.String(); got != body {
		t.Fatalf("client received %d bytes, want %d", len(got), len(body))
	}
	// The true size exceeds the limit, so the store path must skip the
	// entry instead of caching the truncated capture.
	if cw.size != int64(len(body)) {
		t.Fatalf("captured size = %d, want %d", cw.size, len(body))
	}
	if fitsCacheLimit(cw.size, 10) {
		t.Fatal("oversized response must not be cacheable")
	}
}

func TestCache_SmallBodyStoredIntact(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 1 << 20}

	body := []byte(`[{"id_locale":1,"nome_locale":"Trattoria da Mario"}]`)
	if _, err := cw.Write(body[:20]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := cw.Write(body[20:]); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if !fitsCacheLimit(cw.size, 1<<20) {
		t.Fatal("small response must be cacheable")
	}
	if !bytes.Equal(cw.buf.Bytes(), body) {
		t.Fatalf("captured body differs: %q", cw.buf.Bytes())
	}
}

func TestCache_PayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`{"available_seats":25}`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("header lost: %v", gotHdr)
	}
	if !bytes.Equal(gotBody, body) {
		t.Fatalf("body differs: %q", gotBody)
	}
}

func TestCache_DecodeRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, []byte("short"), []byte("\x00\x00\x00\xc8\xff\xff\xff\xff")} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Fatalf("decodePayload accepted %q", bs)
		}
	}
}
