package shell

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a new game (black human, white alphabeta)\n")
	io.WriteString(w, "s - show the board\n")
	io.WriteString(w, "move <sq> - place a disc, e.g. move d3\n")
	io.WriteString(w, "pass - pass the turn; only legal with no moves available\n")
	io.WriteString(w, "legal - list the legal moves for the side to move\n")
	io.WriteString(w, "set <black|white> <human|random [seed]|alphabeta [depth]> - assign a controller\n")
	io.WriteString(w, "ai [n] - let the computer play up to n plies; stops at a human turn\n")
	io.WriteString(w, "selfplay <black> <white> [games] [threads] - run a batch of computer games\n")
	io.WriteString(w, "    players are random or alphabeta<depth>, e.g. selfplay random alphabeta5 200 4\n")
	io.WriteString(w, "bye - exit\n")
}
