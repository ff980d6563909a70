package server

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

const serviceName = "github-webhook-receiver"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

type config struct {
	secret types.WebhookSecret
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.secret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":     "healthy",
			"timestamp":  logging.CtxTime(r.Context()).Format(time.RFC3339),
			"queue_size": uc.QueueSize(),
		})
	})
	r.Route("/github-webhook", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status":    "active",
				"service":   serviceName,
				"timestamp": logging.CtxTime(r.Context()).Format(time.RFC3339),
			})
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			handleGitHubWebhook(w, r, uc, cfg.secret)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
