package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusNotFound)

	if rw.Status() != http.StatusNotFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusBadGateway)
	rw.WriteHeader(http.StatusOK)

	if rw.Status() != http.StatusBadGateway {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusBadGateway)
	}
	if w.Code != http.StatusBadGateway {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Written() {
		t.Fatal("Written() = true before any write")
	}

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 5 || rw.Size() != 5 {
		t.Errorf("Write() n = %d, Size() = %d, want 5", n, rw.Size())
	}
	if rw.Status() != http.StatusOK || w.Code != http.StatusOK {
		t.Errorf("status = %d/%d, want 200", rw.Status(), w.Code)
	}
	if w.Body.String() != "hello" {
		t.Errorf("body = %q, want %q", w.Body.String(), "hello")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return the original writer")
	}
}

func TestNewContext_ReusesResponseWriter(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	outer := newContext(w, r, nil)
	inner := newContext(outer.Response(), r, nil)

	_ = inner.String(http.StatusTeapot, "tea")

	if !outer.Written() {
		t.Error("outer context does not see the inner write")
	}
}
