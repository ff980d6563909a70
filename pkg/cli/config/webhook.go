package config

import (
	"log/slog"

	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Webhook struct {
	secret    types.WebhookSecret `masq:"secret"`
	repoOwner string
	repoName  string
}

func (x *Webhook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Shared secret for X-Hub-Signature-256 verification (empty disables verification)",
			Category:    "Webhook",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("PUSHRELAY_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "repo-owner",
			Usage:       "Repository owner used when simulating a push",
			Category:    "Webhook",
			Destination: &x.repoOwner,
			Sources:     cli.EnvVars("PUSHRELAY_REPO_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo-name",
			Usage:       "Repository name used when simulating a push",
			Category:    "Webhook",
			Destination: &x.repoName,
			Sources:     cli.EnvVars("PUSHRELAY_REPO_NAME"),
		},
	}
}

func (x Webhook) Secret() types.WebhookSecret { return x.secret }
func (x Webhook) RepoOwner() string           { return x.repoOwner }
func (x Webhook) RepoName() string            { return x.repoName }

func (x Webhook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("SignatureRequired", x.secret.IsConfigured()),
		slog.String("RepoOwner", x.repoOwner),
		slog.String("RepoName", x.repoName),
	)
}
