// Package uci implements a Universal Chess Interface protocol driver over
// stdin/stdout, driving internal/engine and internal/board.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/engine"
	"github.com/hailam/chessplay/internal/perft"
)

// UCI drives the engine from UCI text commands read from in, writing
// responses to out.
type UCI struct {
	engine   *engine.Engine
	position *board.Position

	in  *bufio.Scanner
	out io.Writer
}

// New creates a UCI driver reading from stdin and writing to stdout.
func New(eng *engine.Engine) *UCI {
	return &UCI{
		engine:   eng,
		position: board.NewPosition(),
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
}

func (u *UCI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// Run reads and dispatches commands until "quit" or end of input.
func (u *UCI) Run() {
	for u.in.Scan() {
		line := strings.TrimSpace(u.in.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.printf("readyok\n")
		case "ucinewgame":
			u.position = board.NewPosition()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// Single-threaded search already returned by the time this
			// driver reads "stop"; nothing in flight to cancel.
		case "quit":
			return
		case "setoption":
			// No engine options are exposed; "Hash"/"Threads"/"Move
			// Overhead" are advertised for GUI compatibility only.
		case "d":
			u.printf("%s\n", u.position.String())
		case "perftdivide":
			u.handlePerftDivide(args)
		}
	}
}

func (u *UCI) handleUCI() {
	u.printf("id name chessplay\n")
	u.printf("id author chessplay contributors\n")
	u.printf("option name Hash type spin default 1 min 1 max 1\n")
	u.printf("option name Threads type spin default 1 min 1 max 1\n")
	u.printf("option name Move Overhead type spin default 0 min 0 max 5000\n")
	u.printf("uciok\n")
}

// handlePosition handles:
//
//	position startpos [moves ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = 1
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid fen: %v\n", err)
			return
		}
		u.position = pos
		moveStart = fenEnd
	default:
		return
	}

	for i := moveStart; i < len(args); i++ {
		if args[i] == "moves" {
			continue
		}
		legal := u.position.GenerateLegalMoves()
		m, err := board.ParseMove(args[i], legal.Slice())
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid move %q: %v\n", args[i], err)
			return
		}
		u.position.MakeMove(m)
		u.position.UpdateCheckers()
	}
}

// goOptions holds parsed "go" command arguments.
type goOptions struct {
	moveTime time.Duration
	wtime    time.Duration
	btime    time.Duration
	winc     time.Duration
	binc     time.Duration
}

func parseGoOptions(args []string) goOptions {
	var opts goOptions
	ms := func(i int) time.Duration {
		v, _ := strconv.Atoi(args[i])
		return time.Duration(v) * time.Millisecond
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "movetime":
			if i+1 < len(args) {
				opts.moveTime = ms(i + 1)
				i++
			}
		case "wtime":
			if i+1 < len(args) {
				opts.wtime = ms(i + 1)
				i++
			}
		case "btime":
			if i+1 < len(args) {
				opts.btime = ms(i + 1)
				i++
			}
		case "winc":
			if i+1 < len(args) {
				opts.winc = ms(i + 1)
				i++
			}
		case "binc":
			if i+1 < len(args) {
				opts.binc = ms(i + 1)
				i++
			}
		}
	}
	return opts
}

// timeBudget computes how long to think for this move:
// (my_time_remaining/20) + (my_increment/2), clamped to at least 1 second
// when no usable clock information was given.
func timeBudget(opts goOptions, us board.Color) time.Duration {
	if opts.moveTime > 0 {
		return opts.moveTime
	}

	var myTime, myInc time.Duration
	if us == board.White {
		myTime, myInc = opts.wtime, opts.winc
	} else {
		myTime, myInc = opts.btime, opts.binc
	}

	budget := myTime/20 + myInc/2
	if budget <= 0 {
		budget = 1000 * time.Millisecond
	}
	return budget
}

func (u *UCI) handleGo(args []string) {
	opts := parseGoOptions(args)
	budget := timeBudget(opts, u.position.SideToMove)

	pos := u.position.Copy()
	move, _ := u.engine.Search(pos, budget)

	legal := u.position.GenerateLegalMoves()
	if move != board.NoMove && legalContains(legal, move) {
		u.printf("bestmove %s\n", move.String())
		return
	}

	if move != board.NoMove {
		fmt.Fprintf(os.Stderr, "info string search returned an illegal move %s, falling back\n", move.String())
	}

	// Contract violation recovery: the search claims no legal move (or an
	// illegal one) while the position actually has moves. Play a uniformly
	// random legal move rather than forfeit outright.
	if legal.Len() > 0 {
		i := rand.IntN(legal.Len())
		u.printf("bestmove %s\n", legal.Get(i).String())
		return
	}

	u.printf("bestmove (none)\n")
}

func legalContains(ml *board.MoveList, m board.Move) bool {
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i) == m {
			return true
		}
	}
	return false
}

func (u *UCI) handlePerftDivide(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	entries, total := perft.Divide(u.position, depth)
	for _, e := range entries {
		u.printf("%s: %d\n", e.Move.String(), e.Nodes)
	}
	u.printf("\nNodes searched: %d\n", total)
}
