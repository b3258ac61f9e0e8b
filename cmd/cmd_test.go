package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/random"
)

func setHome(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return root
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color", "never"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func defaultDeckPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(config.GetDataDir(), "deck.cbor")
}

func TestInit(t *testing.T) {
	setHome(t)

	out, _, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck initialized at: "+defaultDeckPath(t))
	assert.FileExists(t, config.GetConfigFilePath())

	d, err := deck.Load(defaultDeckPath(t))
	require.NoError(t, err)
	assert.Equal(t, deck.New(), d)

	out, _, err = run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck already exists at:")
}

func TestDeckNewAndShuffle(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "table.cbor")

	out, _, err := run(t, "deck", "new", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote 48 cards to "+path+"\n", out)

	_, _, err = run(t, "deck", "shuffle", "-d", path, "--seed", "17")
	require.NoError(t, err)

	got, err := deck.Load(path)
	require.NoError(t, err)
	assert.Equal(t, deck.Shuffle(deck.New(), random.New(17)), got)
}

func TestDeckShufflePrintsSeed(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "table.cbor")
	require.NoError(t, deck.Save(deck.New(), path))

	_, errOut, err := run(t, "deck", "shuffle", "-d", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(errOut, "seed: "), "got %q", errOut)
}

func TestDeckContains(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "table.cbor")
	require.NoError(t, deck.Save(deck.New(), path))

	out, _, err := run(t, "deck", "contains", "-d", path, "Queen", "of", "Spades")
	require.NoError(t, err)
	assert.Equal(t, "Queen of Spades is in "+path+"\n", out)

	_, _, err = run(t, "deck", "contains", "-d", path, "Queen of Rubies")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Queen of Rubies is not in")
}

func TestDeckContainsMissingFile(t *testing.T) {
	root := setHome(t)

	_, _, err := run(t, "deck", "contains", "-d", filepath.Join(root, "none.cbor"), "Ace of Spades")
	require.Error(t, err)
	assert.True(t, errors.Is(err, deck.ErrReadFailure))
}

func TestDeal(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "table.cbor")
	handPath := filepath.Join(root, "hand.cbor")
	require.NoError(t, deck.Save(deck.New(), path))

	out, _, err := run(t, "deal", "3", "-d", path, "--hand", handPath)
	require.NoError(t, err)
	assert.Equal(t, "♠ Ace of Spades\n♠ Two of Spades\n♠ Three of Spades\n"+
		"Dealt 3 cards, 45 remain in "+path+"\n", out)

	rest, err := deck.Load(path)
	require.NoError(t, err)
	assert.Len(t, rest, 45)
	assert.Equal(t, deck.New()[3:], rest)

	hand, err := deck.Load(handPath)
	require.NoError(t, err)
	assert.Equal(t, deck.New()[:3], hand)
}

func TestDealOversized(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "table.cbor")
	require.NoError(t, deck.Save(deck.Deck{"Ace of Spades"}, path))

	out, _, err := run(t, "deal", "10", "-d", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Dealt 1 cards, 0 remain")

	rest, err := deck.Load(path)
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestDealInvalidCount(t *testing.T) {
	setHome(t)

	_, _, err := run(t, "deal", "five")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid card count")
}

func TestHand(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "rest.cbor")

	out, _, err := run(t, "hand", "--seed", "8", "-o", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6, "five cards from the default hand size plus a summary")
	assert.Equal(t, "43 cards remain", lines[5])

	wantHand, wantRest := deck.CreateHand(5, random.New(8))
	for i, c := range wantHand {
		assert.True(t, strings.HasSuffix(lines[i], string(c)))
	}
	rest, err := deck.Load(path)
	require.NoError(t, err)
	assert.Equal(t, wantRest, rest)
}

func TestHandExplicitCount(t *testing.T) {
	setHome(t)

	out, _, err := run(t, "hand", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "46 cards remain")
}

func TestShow(t *testing.T) {
	root := setHome(t)
	path := filepath.Join(root, "table.cbor")
	require.NoError(t, deck.Save(deck.New(), path))

	out, _, err := run(t, "show", "-d", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, path+" (48 cards)\n"))
	assert.Contains(t, out, "♦ King of Diamonds")

	out, _, err = run(t, "show", "-d", path, "Prince", "of", "Hearts")
	require.NoError(t, err)
	assert.Equal(t, "Card:     ♥ Prince of Hearts\n"+
		"Rank:     Prince\n"+
		"Suit:     Hearts\n"+
		"Position: 34 of 48\n", out)
}

func TestValidate(t *testing.T) {
	root := setHome(t)
	good := filepath.Join(root, "good.cbor")
	bad := filepath.Join(root, "bad.cbor")
	require.NoError(t, deck.Save(deck.Shuffle(deck.New(), random.New(2)), good))
	require.NoError(t, deck.Save(deck.Deck{"Ace of Spades", "Ace of Spades"}, bad))

	out, _, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, _, err = run(t, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "duplicate card: Ace of Spades appears 2 times")
	assert.Equal(t, "validation failed", err.Error())
}

func TestInvalidColorFlag(t *testing.T) {
	setHome(t)

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--color", "rainbow", "hand", "1"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--color")
}
