package automatic

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/mwilbur/iago/config"
	"github.com/mwilbur/iago/game"
	"github.com/mwilbur/iago/turnplayer"
)

func TestPlayFull(t *testing.T) {
	is := is.New(t)

	logChan := make(chan string, 300)
	runner := NewGameRunner(logChan, config.Default())
	runner.Reset(0, turnplayer.Random(21), turnplayer.Random(22))
	res := runner.PlayFull()
	close(logChan)

	is.True(res.Status != game.InProgress)
	is.True(res.Plies >= 8)
	is.True(res.Plies <= maxPlies)
	is.True(res.BlackCount+res.WhiteCount <= 64)

	var lines []string
	for line := range logChan {
		lines = append(lines, line)
	}
	is.Equal(len(lines), res.Plies)
	// Every row carries the game id and six columns.
	for _, line := range lines {
		is.True(strings.HasPrefix(line, "0,"))
		is.Equal(len(strings.Split(strings.TrimSpace(line), ",")), 6)
	}
}

func TestPlayFullMixedControllers(t *testing.T) {
	is := is.New(t)

	runner := NewGameRunner(nil, config.Default())
	runner.Reset(0, turnplayer.Random(31), turnplayer.AlphaBeta(2))
	res := runner.PlayFull()
	is.True(res.Status != game.InProgress)
	is.True(res.BlackCount+res.WhiteCount <= 64)
	// Disc counts at the end account for the four starting discs
	// plus one per non-pass ply.
	placed := res.BlackCount + res.WhiteCount - 4
	is.True(placed <= res.Plies)
}

func TestPlayFullSameSeedsSameOutcome(t *testing.T) {
	is := is.New(t)

	run := func() Result {
		r := NewGameRunner(nil, config.Default())
		r.Reset(0, turnplayer.Random(7), turnplayer.Random(8))
		return r.PlayFull()
	}
	is.Equal(run(), run())
}

func TestPlayBatch(t *testing.T) {
	is := is.New(t)

	seeds := DeriveSeeds(42, 8)
	var buf bytes.Buffer
	stats, err := PlayBatch(context.Background(), config.Default(), 8, 2,
		RandomFactory(seeds), RandomFactory(DeriveSeeds(43, 8)), &buf)
	is.NoErr(err)
	is.Equal(stats.Games(), 8)

	blackWins, whiteWins, draws := stats.Record()
	is.Equal(blackWins+whiteWins+draws, 8)

	is.True(strings.HasPrefix(buf.String(), "gameID,ply,side,move,black,white"))
	is.True(strings.Contains(stats.String(), "games: 8"))

	mean, stddev := stats.DiffMeanStdDev()
	is.True(mean >= -64 && mean <= 64)
	is.True(stddev >= 0)

	var hist strings.Builder
	is.NoErr(stats.WriteHistogram(&hist, 4))
	is.True(hist.Len() > 0)
}

func TestPlayBatchCancellation(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PlayBatch(ctx, config.Default(), 50, 2,
		RandomFactory(DeriveSeeds(1, 50)), RandomFactory(DeriveSeeds(2, 50)), nil)
	is.Equal(err, context.Canceled)
}

func TestDeriveSeeds(t *testing.T) {
	is := is.New(t)

	a := DeriveSeeds(42, 16)
	b := DeriveSeeds(42, 16)
	is.Equal(a, b)

	seen := map[uint64]bool{}
	for _, s := range a {
		is.True(!seen[s])
		seen[s] = true
	}
	is.True(DeriveSeeds(43, 1)[0] != a[0])
}

func TestSeedsSaveLoadRoundTrip(t *testing.T) {
	is := is.New(t)

	seeds := GenerateSeeds(32)
	is.Equal(len(seeds), 32)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	is.NoErr(SaveSeeds(path, seeds))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)
}
