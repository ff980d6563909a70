package model_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

func TestRefToBranch(t *testing.T) {
	t.Run("strips refs/heads/ prefix", func(t *testing.T) {
		gt.V(t, model.RefToBranch("refs/heads/main")).Equal("main")
	})

	t.Run("keeps nested branch names", func(t *testing.T) {
		gt.V(t, model.RefToBranch("refs/heads/feature/my-branch")).Equal("feature/my-branch")
	})

	t.Run("returns tag refs unchanged", func(t *testing.T) {
		gt.V(t, model.RefToBranch("refs/tags/v1.0.0")).Equal("refs/tags/v1.0.0")
	})

	t.Run("returns plain branch name unchanged", func(t *testing.T) {
		gt.V(t, model.RefToBranch("main")).Equal("main")
	})
}

func TestNormalizePushEvent(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return fixedTime })

	t.Run("full payload", func(t *testing.T) {
		payload := []byte(`{
			"ref": "refs/heads/main",
			"compare": "https://github.com/acme/widget/compare/aaa...bbb",
			"repository": {
				"full_name": "acme/widget",
				"html_url": "https://github.com/acme/widget"
			},
			"pusher": {"name": "alice"},
			"commits": [
				{
					"id": "abc123def4567890",
					"message": "Fix the thing\n\nLonger body that must not appear.",
					"url": "https://github.com/acme/widget/commit/abc123d",
					"author": {"name": "alice"}
				}
			]
		}`)

		ev := gt.R1(model.NormalizePushEvent(ctx, payload, "delivery-1")).NoError(t)
		gt.V(t, ev.RepoFullName).Equal("acme/widget")
		gt.V(t, ev.RepoURL).Equal("https://github.com/acme/widget")
		gt.V(t, ev.Branch).Equal("main")
		gt.V(t, ev.PusherName).Equal("alice")
		gt.V(t, ev.CompareURL).Equal("https://github.com/acme/widget/compare/aaa...bbb")
		gt.V(t, ev.ReceivedAt).Equal(fixedTime)
		gt.V(t, ev.DeliveryID).Equal(types.DeliveryID("delivery-1"))

		gt.A(t, ev.Commits).Length(1)
		gt.V(t, ev.Commits[0].ShortID).Equal("abc123d")
		gt.V(t, ev.Commits[0].Message).Equal("Fix the thing")
		gt.V(t, ev.Commits[0].AuthorName).Equal("alice")
	})

	t.Run("missing fields degrade to placeholders", func(t *testing.T) {
		ev := gt.R1(model.NormalizePushEvent(ctx, []byte(`{"ref":"refs/heads/dev"}`), "")).NoError(t)
		gt.V(t, ev.RepoFullName).Equal("unknown")
		gt.V(t, ev.PusherName).Equal("unknown")
		gt.V(t, ev.Branch).Equal("dev")
		gt.A(t, ev.Commits).Length(0)
	})

	t.Run("unparsable payload is an error", func(t *testing.T) {
		_, err := model.NormalizePushEvent(ctx, []byte(`{not json`), "")
		gt.True(t, errors.Is(err, types.ErrMalformedPayload))
	})

	t.Run("empty payload is an error", func(t *testing.T) {
		_, err := model.NormalizePushEvent(ctx, nil, "")
		gt.True(t, errors.Is(err, types.ErrMalformedPayload))
	})

	t.Run("commit message truncation and markup neutralization", func(t *testing.T) {
		long := strings.Repeat("a", 100)
		payload := []byte(`{"commits":[` +
			`{"id":"1111111222","message":"` + long + `"},` +
			`{"id":"2222222333","message":"exactly fits under the bound"},` +
			"{\"id\":\"3333333444\",\"message\":\"has `backticks` and *stars*\"}" +
			`]}`)

		ev := gt.R1(model.NormalizePushEvent(ctx, payload, "")).NoError(t)
		gt.A(t, ev.Commits).Length(3)

		gt.V(t, len(ev.Commits[0].Message)).Equal(80)
		gt.True(t, strings.HasSuffix(ev.Commits[0].Message, "..."))

		gt.V(t, ev.Commits[1].Message).Equal("exactly fits under the bound")

		gt.V(t, ev.Commits[2].Message).Equal("has 'backticks' and stars")
	})

	t.Run("commit without author gets placeholder", func(t *testing.T) {
		ev := gt.R1(model.NormalizePushEvent(ctx, []byte(`{"commits":[{"id":"abc"}]}`), "")).NoError(t)
		gt.V(t, ev.Commits[0].AuthorName).Equal("unknown")
		gt.V(t, ev.Commits[0].ShortID).Equal("abc")
	})
}
