package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pushrelay/pkg/controller/server"
)

func TestHealth(t *testing.T) {
	uc := newMockUseCase()
	uc.QueueSizeFunc = func() int { return 3 }
	srv := server.New(uc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := decodeBody(t, rec)
	gt.V(t, body["status"]).Equal("healthy")
	gt.V(t, body["queue_size"]).Equal(float64(3))
	gt.V(t, body["timestamp"]).NotEqual(nil)
}

func TestWebhookLivenessProbe(t *testing.T) {
	srv := server.New(newMockUseCase())

	req := httptest.NewRequest(http.MethodGet, "/github-webhook", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := decodeBody(t, rec)
	gt.V(t, body["status"]).Equal("active")
	gt.V(t, body["service"]).Equal("github-webhook-receiver")
}
