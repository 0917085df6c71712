package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func TestHealthz_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(fakePinger{err: errors.New("down")})
	rr := httptest.NewRecorder()
	h.Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("liveness must not depend on the db, got %d", rr.Code)
	}
}

func TestReadyz_DBUp_200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(fakePinger{})
	rr := httptest.NewRecorder()
	h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestReadyz_DBDown_503(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(fakePinger{err: errors.New("conn refused")})
	rr := httptest.NewRecorder()
	h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
