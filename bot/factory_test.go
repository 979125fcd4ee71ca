package bot_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-arena/simulator/bot"
)

func TestByName(t *testing.T) {
	for _, kind := range bot.Kinds() {
		t.Run(kind, func(t *testing.T) {
			player, err := bot.ByName(kind, "tester", 3, 42)
			require.NoError(t, err)
			require.Equal(t, "tester", player.Name())
			require.Equal(t, 3, player.ID())
			require.NotNil(t, player.Hand())
		})
	}

	_, err := bot.ByName("CheaterBot", "tester", 3, 42)
	require.Error(t, err)
}
