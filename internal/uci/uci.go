// Package uci implements the Universal Chess Interface protocol on top of
// the search engine.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/exo-shinigami/gambit/internal/board"
	"github.com/exo-shinigami/gambit/internal/engine"
	"github.com/exo-shinigami/gambit/internal/storage"
)

const (
	engineName   = "Gambit"
	engineAuthor = "Gambit team"
)

// UCI implements the UCI protocol main loop.
type UCI struct {
	tables   *board.Tables
	board    *board.Board
	tt       *engine.Table
	searcher *engine.Searcher

	// defaultDepth bounds a bare "go" with no depth and no clock; zero
	// means search until stopped by MaxDepth.
	defaultDepth int

	// store persists option changes across runs; may be nil.
	store *storage.Storage

	out io.Writer

	searchDone chan struct{}
}

// New creates a UCI handler. store may be nil to run without persistence.
func New(hashMB, defaultDepth int, store *storage.Storage) *UCI {
	tables := board.NewTables()
	tt := engine.NewTable(hashMB)
	return &UCI{
		tables:       tables,
		board:        board.NewBoard(tables),
		tt:           tt,
		searcher:     engine.NewSearcher(tt),
		defaultDepth: defaultDepth,
		store:        store,
		out:          os.Stdout,
	}
}

// Run reads commands from r until "quit" or EOF.
func (u *UCI) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleStop()
			return
		case "setoption":
			u.handleSetOption(args)
		// Debug commands.
		case "d":
			u.waitForSearch()
			fmt.Fprintln(u.out, u.board)
			fmt.Fprintln(u.out, "fen:", u.board.FEN())
		case "perft":
			u.handlePerft(args)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Fprintf(u.out, "id name %s\n", engineName)
	fmt.Fprintf(u.out, "id author %s\n", engineAuthor)
	fmt.Fprintln(u.out)
	fmt.Fprintf(u.out, "option name Hash type spin default %d min %d max %d\n",
		engine.DefaultHashMB, engine.MinHashMB, engine.MaxHashMB)
	fmt.Fprintln(u.out, "uciok")
}

func (u *UCI) handleNewGame() {
	u.waitForSearch()
	u.tt.Clear()
	u.board = board.NewBoard(u.tables)
}

// handlePosition sets up a position:
//
//	position startpos [moves e2e4 e7e5 ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	u.waitForSearch()

	if len(args) == 0 {
		return
	}

	movesIdx := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesIdx = i
			break
		}
	}
	moveStart := movesIdx + 1
	if moveStart > len(args) {
		moveStart = len(args)
	}

	switch args[0] {
	case "startpos":
		u.board = board.NewBoard(u.tables)
	case "fen":
		fen := strings.Join(args[1:movesIdx], " ")
		if err := u.board.LoadFEN(fen); err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid fen: %v\n", err)
			return
		}
	default:
		return
	}

	for _, ms := range args[moveStart:] {
		m, err := u.board.ParseMove(ms)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid move %s: %v\n", ms, err)
			return
		}
		u.board.MakeMove(m)
	}

	// The applied moves stay in the history for repetition detection, but
	// the next search starts counting plies from here.
	u.board.Ply = 0
}

// goOptions holds parsed "go" arguments.
type goOptions struct {
	depth     int
	moveTime  time.Duration
	infinite  bool
	wtime     time.Duration
	btime     time.Duration
	winc      time.Duration
	binc      time.Duration
	movesToGo int
}

func parseGoOptions(args []string) goOptions {
	var opts goOptions

	ms := func(i int) time.Duration {
		n, _ := strconv.Atoi(args[i])
		return time.Duration(n) * time.Millisecond
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				opts.depth, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				opts.moveTime = ms(i + 1)
				i++
			}
		case "infinite":
			opts.infinite = true
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
		case "movestogo":
			if i+1 < len(args) {
				opts.movesToGo, _ = strconv.Atoi(args[i+1])
				i++
			}
		}
	}

	return opts
}

func (u *UCI) handleGo(args []string) {
	u.waitForSearch()

	opts := parseGoOptions(args)
	limits := u.limitsFor(opts)

	u.searcher.OnIter = func(info engine.Info) {
		u.sendInfo(info)
	}

	u.searchDone = make(chan struct{})
	go func() {
		defer close(u.searchDone)

		best := u.searcher.BestMove(u.board, limits)
		fmt.Fprintf(u.out, "info string ordering %.2f tthits %d ttcuts %d ttwrites %d overwrites %d\n",
			u.searcher.Ordering(), u.tt.Hits, u.tt.Cuts, u.tt.NewWrites, u.tt.OverWrites)
		if best == board.NoMove {
			// Mate or stalemate on the board already.
			fmt.Fprintln(u.out, "bestmove 0000")
			return
		}
		fmt.Fprintf(u.out, "bestmove %s\n", best)
	}()
}

func (u *UCI) handleStop() {
	u.searcher.Stop()
	u.waitForSearch()
}

func (u *UCI) waitForSearch() {
	if u.searchDone != nil {
		<-u.searchDone
		u.searchDone = nil
	}
}

// limitsFor converts go options into search limits, carving a time slice
// out of the game clock when no explicit move time is given.
func (u *UCI) limitsFor(opts goOptions) engine.Limits {
	limits := engine.Limits{Depth: opts.depth}

	if opts.infinite {
		limits.Infinite = true
		return limits
	}

	if opts.moveTime > 0 {
		limits.MoveTime = opts.moveTime
		return limits
	}

	ourTime := opts.wtime
	ourInc := opts.winc
	if u.board.Side == board.Black {
		ourTime = opts.btime
		ourInc = opts.binc
	}
	if ourTime <= 0 {
		if limits.Depth == 0 {
			limits.Depth = u.defaultDepth
		}
		return limits
	}

	movesToGo := opts.movesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}

	moveTime := ourTime/time.Duration(movesToGo) + ourInc*90/100
	if max := ourTime * 90 / 100; moveTime > max {
		moveTime = max
	}
	if moveTime < 10*time.Millisecond {
		moveTime = 10 * time.Millisecond
	}

	limits.MoveTime = moveTime
	return limits
}

func (u *UCI) handleSetOption(args []string) {
	// setoption name <name> [value <value>]
	name, value := "", ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "name":
			if i+1 < len(args) {
				name = args[i+1]
			}
		case "value":
			if i+1 < len(args) {
				value = args[i+1]
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid Hash value %q\n", value)
			return
		}
		u.waitForSearch()
		u.tt.Resize(mb)
		u.persistHash(mb)
	}
}

func (u *UCI) persistHash(mb int) {
	if u.store == nil {
		return
	}
	opts, err := u.store.LoadOptions()
	if err != nil {
		log.Printf("load options: %v", err)
		return
	}
	opts.HashMB = mb
	if err := u.store.SaveOptions(opts); err != nil {
		log.Printf("save options: %v", err)
	}
}

func (u *UCI) handlePerft(args []string) {
	u.waitForSearch()

	depth := 4
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil && d > 0 {
			depth = d
		}
	}

	start := time.Now()
	results, total := u.board.PerftDivide(depth)
	for _, r := range results {
		fmt.Fprintf(u.out, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(u.out, "\nnodes %d time %dms\n", total, time.Since(start).Milliseconds())
}

func (u *UCI) sendInfo(info engine.Info) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "info depth %d score %s nodes %d time %d",
		info.Depth, engine.ScoreString(info.Score), info.Nodes, info.Time.Milliseconds())

	if info.Time > 0 {
		fmt.Fprintf(&sb, " nps %d", int64(float64(info.Nodes)/info.Time.Seconds()))
	}

	if len(info.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range info.PV {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
	}

	fmt.Fprintln(u.out, sb.String())
}
