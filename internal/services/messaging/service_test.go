package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(&ServiceConfig{RandSeed: 42})
	require.NoError(t, err)
	return svc
}

func TestGetTurnMessageMentionsPlayer(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 50; i++ {
		output, err := svc.GetTurnMessage(context.Background(), &GetTurnMessageInput{
			PlayerMention: "<@12345>",
		})
		require.NoError(t, err)
		assert.Contains(t, output.Message, "<@12345>")
		assert.NotContains(t, output.Message, "{player}")
	}
}

func TestGetGameStartedMessageListsPlayers(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetGameStartedMessage(context.Background(), &GetGameStartedMessageInput{
		PlayerMentions: []string{"<@1>", "<@2>"},
	})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "<@1>, <@2>")
}

func TestGetGameOverMessageMentionsWinner(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 50; i++ {
		output, err := svc.GetGameOverMessage(context.Background(), &GetGameOverMessageInput{
			WinnerMention: "<@777>",
		})
		require.NoError(t, err)
		assert.Contains(t, output.Message, "<@777>")
	}
}

func TestGetDrawMessage(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetDrawMessage(context.Background(), &GetDrawMessageInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Message)
}

func TestGetButtonLabel(t *testing.T) {
	svc := newTestService(t)

	for _, kind := range []ButtonKind{ButtonJoin, ButtonLeave, ButtonStart} {
		output, err := svc.GetButtonLabel(context.Background(), &GetButtonLabelInput{Kind: kind})
		require.NoError(t, err)
		assert.NotEmpty(t, output.Label)
	}

	_, err := svc.GetButtonLabel(context.Background(), &GetButtonLabelInput{Kind: "banana"})
	assert.Error(t, err)
}

func TestCommonPhrasingsDominate(t *testing.T) {
	svc := newTestService(t)

	counts := make(map[string]int)
	for i := 0; i < 500; i++ {
		output, err := svc.GetButtonLabel(context.Background(), &GetButtonLabelInput{Kind: ButtonJoin})
		require.NoError(t, err)
		counts[output.Label]++
	}

	// "Join" has weight 0.7 and must be the most frequent pick
	best, bestCount := "", 0
	for label, count := range counts {
		if count > bestCount {
			best, bestCount = label, count
		}
	}
	assert.Equal(t, "Join", best)
}

func TestInputValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetTurnMessage(context.Background(), nil)
	assert.Error(t, err)

	_, err = svc.GetGameStartedMessage(context.Background(), &GetGameStartedMessageInput{})
	assert.Error(t, err)

	_, err = svc.GetGameOverMessage(context.Background(), &GetGameOverMessageInput{})
	assert.Error(t, err)
}
