package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/errutil"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

// handleGitHubWebhook authenticates, classifies, and normalizes an inbound
// GitHub webhook request, then enqueues the result via the use case. The
// response is sent without waiting for delivery; the only synchronous work
// is verification, normalization, and the enqueue itself.
func handleGitHubWebhook(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase, secret types.WebhookSecret) {
	ctx := r.Context()

	eventType := r.Header.Get("X-GitHub-Event")
	deliveryID := types.DeliveryID(r.Header.Get("X-GitHub-Delivery"))

	logger := logging.From(ctx).With(
		slog.String("event", eventType),
		slog.String("delivery_id", string(deliveryID)),
	)
	logger.Info("received GitHub webhook")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.HandleError(ctx, "fail to read webhook body", goerr.Wrap(err, "reading request body"))
		respondJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	if !VerifySignature(body, secret, r.Header.Get("X-Hub-Signature-256")) {
		logger.Warn("invalid webhook signature")
		respondJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid signature"})
		return
	}

	switch eventType {
	case "ping":
		respondJSON(w, http.StatusOK, map[string]any{
			"status":    "pong",
			"zen":       pingZen(body),
			"event":     "ping",
			"timestamp": logging.CtxTime(ctx).Format(time.RFC3339),
		})

	case "push":
		// The queued event outlives this request. Detach so a client
		// disconnect cannot cancel normalization or the enqueue, while
		// the request ID and time source stay attached.
		ctx := DetachContext(ctx)

		ev, err := model.NormalizePushEvent(ctx, body, deliveryID)
		if err != nil {
			logger.Warn("unparsable push payload", slog.Any("error", err))
			respondJSON(w, http.StatusBadRequest, map[string]any{"error": "No JSON data"})
			return
		}

		if err := uc.ReceivePushEvent(ctx, ev); err != nil {
			errutil.HandleError(ctx, "fail to enqueue push event", err)
			respondJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}

		logger.Info("queued push event",
			slog.String("repository", ev.RepoFullName),
			slog.String("branch", ev.Branch),
			slog.Int("commits", len(ev.Commits)),
		)
		respondJSON(w, http.StatusOK, map[string]any{
			"status":     "received",
			"event":      "push",
			"repository": ev.RepoFullName,
			"branch":     ev.Branch,
			"queued":     true,
		})

	default:
		logger.Info("ignored webhook event")
		respondJSON(w, http.StatusOK, map[string]any{
			"status": "ignored",
			"event":  eventType,
		})
	}
}

// pingZen extracts the zen greeting from a ping payload. Ping bodies are
// best-effort: an unparsable body falls back to a placeholder instead of
// failing the handshake.
func pingZen(body []byte) string {
	var ping github.PingEvent
	if err := json.Unmarshal(body, &ping); err != nil || ping.GetZen() == "" {
		return "No zen message"
	}
	return ping.GetZen()
}
