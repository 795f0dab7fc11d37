// Package automatic contains the logic for computer-vs-computer play:
// single games, concurrent batches across worker goroutines, and
// result aggregation.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/config"
	"github.com/mwilbur/iago/game"
	"github.com/mwilbur/iago/turnplayer"
)

// Both sides pass at most once in a row, so a finished game can never
// need more plies than this.
const maxPlies = 200

// A Result is the outcome of one finished self-play game.
type Result struct {
	Status     game.Status
	BlackCount int
	WhiteCount int
	Plies      int
}

// GameRunner drives one self-play game at a time. The per-move log
// channel, if non-nil, receives one CSV line per ply.
type GameRunner struct {
	session *turnplayer.Session
	cfg     *config.Config
	gameID  int
	logchan chan<- string
}

// NewGameRunner instantiates a runner. logchan may be nil.
func NewGameRunner(logchan chan<- string, cfg *config.Config) *GameRunner {
	return &GameRunner{logchan: logchan, cfg: cfg}
}

// Reset starts a fresh game between the two controllers. Controllers
// carry mutable strategy state, so each game gets its own.
func (r *GameRunner) Reset(gameID int, black, white turnplayer.Controller) {
	r.gameID = gameID
	r.session = turnplayer.NewSession()
	r.session.SetController(board.Black, black)
	r.session.SetController(board.White, white)
}

// PlayFull plays the current game to the end and returns the outcome.
func (r *GameRunner) PlayFull() Result {
	plies := 0
	for plies < maxPlies && r.session.Status() == game.InProgress {
		before := r.session.Position()
		if r.session.AdvanceOneAIPly() == 0 {
			// Human-controlled side or internal refusal: nothing to do.
			break
		}
		plies++
		if r.logchan != nil {
			r.logchan <- r.plyLogLine(plies, before)
		}
	}
	blackCount, whiteCount := r.session.Counts()
	res := Result{
		Status:     r.session.Status(),
		BlackCount: blackCount,
		WhiteCount: whiteCount,
		Plies:      plies,
	}
	log.Debug().
		Int("game-id", r.gameID).
		Stringer("status", res.Status).
		Int("black", res.BlackCount).
		Int("white", res.WhiteCount).
		Int("plies", res.Plies).
		Msg("game-over")
	return res
}

// plyLogLine formats one CSV row. The placed square is recovered by
// diffing occupancy before and after the ply; a pass leaves the move
// column empty.
func (r *GameRunner) plyLogLine(ply int, before board.Position) string {
	after := r.session.Position()
	placed := after.Occupied() &^ before.Occupied()
	moveStr := ""
	if placed != 0 {
		moveStr = placed.Lowest().String()
	}
	blackCount, whiteCount := after.Counts()
	return fmt.Sprintf("%d,%d,%s,%s,%d,%d\n",
		r.gameID, ply, before.SideToMove(), moveStr, blackCount, whiteCount)
}

// LogHeader is the first line of the per-move CSV log.
const LogHeader = "gameID,ply,side,move,black,white\n"
