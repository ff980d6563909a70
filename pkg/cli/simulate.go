package cli

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
	"github.com/m-mizutani/pushrelay/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func simulateCommand() *cli.Command {
	var (
		url       string
		secret    string
		repoOwner string
		repoName  string
		pusher    string
	)

	return &cli.Command{
		Name:  "simulate",
		Usage: "Post a synthetic push event to a running relay",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "url",
				Usage:       "Webhook endpoint of the relay",
				Value:       "http://127.0.0.1:5000/github-webhook",
				Sources:     cli.EnvVars("PUSHRELAY_SIMULATE_URL"),
				Destination: &url,
			},
			&cli.StringFlag{
				Name:        "webhook-secret",
				Usage:       "Shared secret for signing the synthetic payload",
				Sources:     cli.EnvVars("PUSHRELAY_WEBHOOK_SECRET"),
				Destination: &secret,
			},
			&cli.StringFlag{
				Name:        "repo-owner",
				Usage:       "Repository owner (auto-detected from the local git remote if empty)",
				Sources:     cli.EnvVars("PUSHRELAY_REPO_OWNER"),
				Destination: &repoOwner,
			},
			&cli.StringFlag{
				Name:        "repo-name",
				Usage:       "Repository name (auto-detected from the local git remote if empty)",
				Sources:     cli.EnvVars("PUSHRELAY_REPO_NAME"),
				Destination: &repoName,
			},
			&cli.StringFlag{
				Name:        "pusher",
				Usage:       "Pusher name embedded in the synthetic payload",
				Value:       "simulator",
				Destination: &pusher,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if repoOwner == "" || repoName == "" {
				owner, name, err := AutoDetectRepo(".")
				if err != nil {
					logging.From(ctx).Warn("failed to detect repository from git remote", "error", err)
				} else {
					if repoOwner == "" {
						repoOwner = owner
					}
					if repoName == "" {
						repoName = name
					}
				}
			}
			if repoOwner == "" {
				repoOwner = "example"
			}
			if repoName == "" {
				repoName = "repository"
			}

			deliveryID := "simulated-" + uuid.NewString()
			body, err := buildSimulatedPayload(repoOwner, repoName, pusher)
			if err != nil {
				return err
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return goerr.Wrap(err, "failed to create request", goerr.V("url", url))
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", "push")
			req.Header.Set("X-GitHub-Delivery", deliveryID)
			if secret != "" {
				req.Header.Set("X-Hub-Signature-256", signPayload(body, secret))
			}

			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Do(req)
			if err != nil {
				return goerr.Wrap(err, "failed to post simulated event", goerr.V("url", url))
			}
			defer safe.Close(resp.Body)

			respBody, err := io.ReadAll(resp.Body)
			if err != nil {
				return goerr.Wrap(err, "failed to read response body")
			}

			logging.From(ctx).Info("simulated push posted",
				slog.String("delivery_id", deliveryID),
				slog.String("repository", repoOwner+"/"+repoName),
				slog.Int("status_code", resp.StatusCode),
				slog.String("response", string(respBody)),
			)

			if resp.StatusCode != http.StatusOK {
				return goerr.New("relay rejected the simulated event",
					goerr.V("status_code", resp.StatusCode),
					goerr.V("response", string(respBody)),
				)
			}

			return nil
		},
	}
}

func buildSimulatedPayload(owner, name, pusher string) ([]byte, error) {
	fullName := owner + "/" + name
	repoURL := "https://github.com/" + fullName
	commitID := uuid.NewString()

	payload := map[string]any{
		"ref": "refs/heads/main",
		"repository": map[string]any{
			"full_name": fullName,
			"html_url":  repoURL,
		},
		"pusher": map[string]any{
			"name": pusher,
		},
		"sender": map[string]any{
			"login":      pusher,
			"avatar_url": fmt.Sprintf("https://github.com/%s.png", pusher),
		},
		"compare": repoURL + "/compare/main",
		"commits": []map[string]any{
			{
				"id":      commitID,
				"message": "Simulated commit",
				"url":     repoURL + "/commit/" + commitID,
				"author": map[string]any{
					"name": pusher,
				},
			},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal simulated payload")
	}
	return raw, nil
}

func signPayload(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
