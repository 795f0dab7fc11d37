package automatic

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"

	"github.com/mwilbur/iago/game"
)

// BatchStats accumulates outcomes across a batch of self-play games.
// It is safe for concurrent Add calls.
type BatchStats struct {
	mu        sync.Mutex
	blackWins int
	whiteWins int
	draws     int
	// Disc differential from Black's point of view, one entry per game.
	diffs []float64
}

func NewBatchStats() *BatchStats {
	return &BatchStats{}
}

func (s *BatchStats) Add(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch res.Status {
	case game.BlackWins:
		s.blackWins++
	case game.WhiteWins:
		s.whiteWins++
	case game.Draw:
		s.draws++
	}
	s.diffs = append(s.diffs, float64(res.BlackCount-res.WhiteCount))
}

func (s *BatchStats) Games() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diffs)
}

func (s *BatchStats) Record() (blackWins, whiteWins, draws int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blackWins, s.whiteWins, s.draws
}

// DiffMeanStdDev returns the mean and standard deviation of the
// per-game disc differential, Black minus White.
func (s *BatchStats) DiffMeanStdDev() (mean, stddev float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.diffs) == 0 {
		return 0, 0
	}
	return stat.MeanStdDev(s.diffs, nil)
}

// WriteHistogram prints an ASCII histogram of disc differentials.
func (s *BatchStats) WriteHistogram(w io.Writer, bins int) error {
	s.mu.Lock()
	diffs := make([]float64, len(s.diffs))
	copy(diffs, s.diffs)
	s.mu.Unlock()
	if len(diffs) == 0 {
		return nil
	}
	hist := histogram.Hist(bins, diffs)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

func (s *BatchStats) String() string {
	blackWins, whiteWins, draws := s.Record()
	mean, stddev := s.DiffMeanStdDev()
	var sb strings.Builder
	fmt.Fprintf(&sb, "games: %d\n", blackWins+whiteWins+draws)
	fmt.Fprintf(&sb, "black wins: %d, white wins: %d, draws: %d\n",
		blackWins, whiteWins, draws)
	fmt.Fprintf(&sb, "disc differential (black): mean %.2f, stddev %.2f\n",
		mean, stddev)
	return sb.String()
}
