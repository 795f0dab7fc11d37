// Package shell implements the interactive console for playing and
// analyzing games.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/mwilbur/iago/automatic"
	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/config"
	"github.com/mwilbur/iago/turnplayer"
)

const historyFile = "/tmp/iago-readline.tmp"

type ShellController struct {
	l       *readline.Instance
	cfg     *config.Config
	session *turnplayer.Session
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31miago>\033[0m ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, cfg: cfg}
	sc.newGame()
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func (sc *ShellController) newGame() {
	sc.session = turnplayer.NewSession()
	sc.session.SetController(board.Black, turnplayer.Human())
	sc.session.SetController(board.White, turnplayer.AlphaBeta(sc.cfg.DefaultDepth))
}

func (sc *ShellController) showBoard() {
	sc.showMessage(sc.session.Position().ToDisplayText())
	sc.showMessage(sc.statusLine())
}

func (sc *ShellController) statusLine() string {
	blackCount, whiteCount := sc.session.Counts()
	if c, ok := sc.session.SideToMove(); ok {
		return fmt.Sprintf("%s to move (black %d, white %d)",
			c, blackCount, whiteCount)
	}
	return fmt.Sprintf("game over: %s (black %d, white %d)",
		sc.session.Status(), blackCount, whiteCount)
}

func (sc *ShellController) playMove(coords string) error {
	sq, err := board.ParseSquare(coords)
	if err != nil {
		return err
	}
	if err := sc.session.TryMove(sq.X(), sq.Y()); err != nil {
		return err
	}
	sc.showBoard()
	return nil
}

func (sc *ShellController) showLegal() {
	legal := sc.session.LegalMoves()
	if legal == 0 {
		sc.showMessage("no legal moves; pass")
		return
	}
	names := make([]string, 0, legal.Count())
	for _, sq := range legal.Squares() {
		names = append(names, sq.String())
	}
	sc.showMessage(strings.Join(names, " "))
}

// controllerFromArgs parses the tail of a `set` command, one of
// "human", "random [seed]", "alphabeta [depth]".
func (sc *ShellController) controllerFromArgs(args []string) (turnplayer.Controller, error) {
	switch args[0] {
	case "human":
		return turnplayer.Human(), nil
	case "random":
		seed := sc.cfg.DefaultSeed
		if len(args) > 1 {
			s, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return turnplayer.Controller{}, err
			}
			seed = s
		}
		return turnplayer.Random(seed), nil
	case "alphabeta":
		depth := sc.cfg.DefaultDepth
		if len(args) > 1 {
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return turnplayer.Controller{}, err
			}
			depth = d
		}
		return turnplayer.AlphaBeta(depth), nil
	}
	return turnplayer.Controller{}, fmt.Errorf("unknown player type %q", args[0])
}

func (sc *ShellController) setController(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <black|white> <human|random [seed]|alphabeta [depth]>")
	}
	var c board.Color
	switch args[0] {
	case "black":
		c = board.Black
	case "white":
		c = board.White
	default:
		return fmt.Errorf("unknown color %q", args[0])
	}
	ctrl, err := sc.controllerFromArgs(args[1:])
	if err != nil {
		return err
	}
	sc.session.SetController(c, ctrl)
	sc.showMessage(fmt.Sprintf("%s is now %s", c, ctrl))
	return nil
}

func (sc *ShellController) advanceAI(args []string) error {
	maxSteps := 120
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		maxSteps = n
	}
	n := sc.session.AdvanceAIPlies(maxSteps)
	sc.showMessage(fmt.Sprintf("advanced %d plies", n))
	sc.showBoard()
	return nil
}

func (sc *ShellController) selfplay(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: selfplay <black> <white> [games] [threads], players are random or alphabeta")
	}
	numGames := sc.cfg.SelfplayGames
	threads := sc.cfg.SelfplayThreads
	var err error
	if len(args) > 2 {
		if numGames, err = strconv.Atoi(args[2]); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if threads, err = strconv.Atoi(args[3]); err != nil {
			return err
		}
	}
	makeBlack, err := sc.factoryFromArg(args[0])
	if err != nil {
		return err
	}
	makeWhite, err := sc.factoryFromArg(args[1])
	if err != nil {
		return err
	}

	logFile, err := os.Create(sc.cfg.SelfplayLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	sc.showMessage(fmt.Sprintf("playing %d games on %d threads, logging to %s",
		numGames, threads, sc.cfg.SelfplayLogFile))

	stats, err := automatic.PlayBatch(context.Background(), sc.cfg,
		numGames, threads, makeBlack, makeWhite, logFile)
	if err != nil {
		return err
	}
	sc.showMessage(stats.String())
	var sb strings.Builder
	if err := stats.WriteHistogram(&sb, 10); err != nil {
		return err
	}
	sc.showMessage(sb.String())
	return nil
}

func (sc *ShellController) factoryFromArg(arg string) (automatic.ControllerFactory, error) {
	switch {
	case arg == "random":
		seeds := automatic.DeriveSeeds(sc.cfg.DefaultSeed, sc.cfg.SelfplayGames)
		return automatic.RandomFactory(seeds), nil
	case arg == "alphabeta":
		return automatic.AlphaBetaFactory(sc.cfg.DefaultDepth), nil
	case strings.HasPrefix(arg, "alphabeta"):
		depth, err := strconv.Atoi(strings.TrimPrefix(arg, "alphabeta"))
		if err != nil {
			return nil, err
		}
		return automatic.AlphaBetaFactory(depth), nil
	}
	return nil, fmt.Errorf("unknown player type %q", arg)
}

func (sc *ShellController) executeLine(line string, sig chan os.Signal) (bool, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		sc.newGame()
		sc.showBoard()
	case "s", "show":
		sc.showBoard()
	case "m", "move":
		if len(args) != 1 {
			return false, errors.New("usage: move <square>, e.g. move d3")
		}
		return false, sc.playMove(args[0])
	case "pass":
		if !sc.session.AttemptPass() {
			return false, errors.New("passing is only allowed with no legal moves")
		}
		sc.showBoard()
	case "legal":
		sc.showLegal()
	case "set":
		return false, sc.setController(args)
	case "ai":
		return false, sc.advanceAI(args)
	case "selfplay":
		return false, sc.selfplay(args)
	case "help":
		usage(sc.l.Stderr())
	case "bye", "exit":
		sig <- syscall.SIGINT
		return true, nil
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
	}
	return false, nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		done, err := sc.executeLine(line, sig)
		if err != nil {
			sc.showError(err)
		}
		if done {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
