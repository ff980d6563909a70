package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pushrelay/pkg/controller/server"
	"github.com/m-mizutani/pushrelay/pkg/domain/mock"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
)

func newMockUseCase() *mock.UseCaseMock {
	return &mock.UseCaseMock{
		ReceivePushEventFunc: func(ctx context.Context, ev *model.PushEvent) error {
			return nil
		},
		QueueSizeFunc: func() int {
			return 0
		},
	}
}

func postWebhook(t *testing.T, srv *server.Server, event string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/github-webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWebhookPing(t *testing.T) {
	t.Run("responds pong with zen message", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc)

		rec := postWebhook(t, srv, "ping", []byte(`{"zen":"Keep it logically awesome."}`), nil)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		body := decodeBody(t, rec)
		gt.V(t, body["status"]).Equal("pong")
		gt.V(t, body["zen"]).Equal("Keep it logically awesome.")
		gt.V(t, body["event"]).Equal("ping")

		// Ping must not reach the queue
		gt.V(t, len(uc.ReceivePushEventCalls())).Equal(0)
	})

	t.Run("unparsable ping body falls back to placeholder zen", func(t *testing.T) {
		srv := server.New(newMockUseCase())
		rec := postWebhook(t, srv, "ping", []byte(`not json`), nil)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeBody(t, rec)["zen"]).Equal("No zen message")
	})
}

func TestWebhookPush(t *testing.T) {
	payload := []byte(`{
		"ref": "refs/heads/main",
		"repository": {"full_name": "acme/widget", "html_url": "https://github.com/acme/widget"},
		"pusher": {"name": "alice"},
		"commits": [{"id": "abc123def456", "message": "Fix", "url": "https://example.com", "author": {"name": "alice"}}]
	}`)

	t.Run("valid push is normalized and enqueued", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc)

		rec := postWebhook(t, srv, "push", payload, map[string]string{
			"X-GitHub-Delivery": "delivery-42",
		})

		gt.V(t, rec.Code).Equal(http.StatusOK)
		body := decodeBody(t, rec)
		gt.V(t, body["status"]).Equal("received")
		gt.V(t, body["event"]).Equal("push")
		gt.V(t, body["repository"]).Equal("acme/widget")
		gt.V(t, body["branch"]).Equal("main")
		gt.V(t, body["queued"]).Equal(true)

		calls := uc.ReceivePushEventCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Ev.RepoFullName).Equal("acme/widget")
		gt.V(t, string(calls[0].Ev.DeliveryID)).Equal("delivery-42")
	})

	t.Run("enqueue context survives client disconnect", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc)

		reqCtx, cancel := context.WithCancel(context.Background())
		cancel()

		req := httptest.NewRequest(http.MethodPost, "/github-webhook", bytes.NewReader(payload)).WithContext(reqCtx)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "push")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		calls := uc.ReceivePushEventCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Ctx.Err()).Equal(nil)
	})

	t.Run("unparsable push body returns 400", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc)

		rec := postWebhook(t, srv, "push", []byte(`{broken`), nil)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, decodeBody(t, rec)["error"]).Equal("No JSON data")
		gt.V(t, len(uc.ReceivePushEventCalls())).Equal(0)
	})
}

func TestWebhookSignature(t *testing.T) {
	payload := []byte(`{"ref":"refs/heads/main"}`)

	t.Run("valid signature is accepted", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc, server.WithWebhookSecret("hook-secret"))

		rec := postWebhook(t, srv, "push", payload, map[string]string{
			"X-Hub-Signature-256": signBody(payload, "hook-secret"),
		})

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, len(uc.ReceivePushEventCalls())).Equal(1)
	})

	t.Run("invalid signature returns 401 and is never processed", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc, server.WithWebhookSecret("hook-secret"))

		rec := postWebhook(t, srv, "push", payload, map[string]string{
			"X-Hub-Signature-256": "sha256=deadbeef",
		})

		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
		gt.V(t, decodeBody(t, rec)["error"]).Equal("Invalid signature")
		gt.V(t, len(uc.ReceivePushEventCalls())).Equal(0)
	})

	t.Run("missing signature header returns 401 when secret configured", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc, server.WithWebhookSecret("hook-secret"))

		rec := postWebhook(t, srv, "push", payload, nil)
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	})
}

func TestWebhookIgnoredEvent(t *testing.T) {
	uc := newMockUseCase()
	srv := server.New(uc)

	rec := postWebhook(t, srv, "issues", []byte(`{"action":"opened"}`), nil)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := decodeBody(t, rec)
	gt.V(t, body["status"]).Equal("ignored")
	gt.V(t, body["event"]).Equal("issues")
	gt.V(t, len(uc.ReceivePushEventCalls())).Equal(0)
}
