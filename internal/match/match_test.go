package match

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/duelcore/internal/config"
	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/log"
)

func TestNewWithDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	logger := log.NewMemoryLogger()

	s, err := New(cfg, Options{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, "Warriors of Light", s.Decks[0].Name)
	assert.Equal(t, "Shadow Court", s.Decks[1].Name)
	assert.Equal(t, "Player 1", s.Game.Players[0].Name)

	require.NoError(t, s.Game.StartGame())
	assert.Equal(t, game.OpeningHandStarter, s.Game.Players[0].HandCount())
	assert.Len(t, logger.EventsOfType(log.EventShuffle), 2)
}

func TestNewFromDeckListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	lines := strings.Repeat("celtic_guardian\n", game.MinDeckSize) + "!extra\ntwin_headed_dragon\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	cfg := config.Default()
	cfg.Decks.Player1 = path
	cfg.NoShuffle = true
	cfg.StartingPlayer = 1

	s, err := New(cfg, Options{})
	require.NoError(t, err)
	assert.Len(t, s.Decks[1].Main, game.MinDeckSize)
	assert.Equal(t, []string{"twin_headed_dragon"}, s.Decks[1].Extra)
	assert.Equal(t, 1, s.Game.CurrentPlayerIdx)
}

func TestNewRejectsUnknownCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("missingno\n", game.MinDeckSize)), 0o644))

	cfg := config.Default()
	cfg.Decks.Player0 = path
	_, err := New(cfg, Options{})
	assert.ErrorIs(t, err, game.ErrUnknownCardID)
}

func TestNewRejectsShortDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte("celtic_guardian\n"), 0o644))

	cfg := config.Default()
	cfg.Decks.Player0 = path
	_, err := New(cfg, Options{})
	assert.ErrorIs(t, err, game.ErrDeckSize)
}
