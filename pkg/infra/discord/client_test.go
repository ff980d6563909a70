package discord_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/infra/discord"
	"github.com/m-mizutani/pushrelay/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := discord.New("", "channel")
		gt.Error(t, err)
	})

	t.Run("ready channel is not closed before open", func(t *testing.T) {
		client := gt.R1(discord.New("dummy-token", "channel")).NoError(t)
		select {
		case <-client.Ready():
			t.Fatal("ready channel closed without a session")
		default:
		}
	})
}

// TestLivePostMessage posts a real message. It needs a bot token and a
// channel the bot can write to, so it is skipped unless both are set.
func TestLivePostMessage(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "PUSHRELAY_TEST_DISCORD_TOKEN")
	channelID := testutil.GetEnvOrSkip(t, "PUSHRELAY_TEST_DISCORD_CHANNEL_ID")

	client := gt.R1(discord.New(types.BotToken(token), types.ChannelID(channelID))).NoError(t)
	gt.NoError(t, client.Open())
	defer func() { _ = client.Close() }()

	select {
	case <-client.Ready():
	case <-time.After(10 * time.Second):
		t.Fatal("session did not become ready")
	}

	msg := &model.Message{
		Title:       "pushrelay live test",
		Description: "posted by TestLivePostMessage",
		Color:       0x2ECC71,
		Timestamp:   time.Now().UTC(),
	}
	gt.NoError(t, client.PostMessage(context.Background(), types.ChannelID(channelID), msg))
}
