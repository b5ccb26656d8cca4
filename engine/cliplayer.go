package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/klondike/protocol"
)

var (
	ErrUnknownInput = errors.New("unrecognised input, type \"help\" for commands")
	ErrMissingArgs  = errors.New("missing arguments")
	ErrOutOfRange   = errors.New("out of range")
)

type inputKind int

const (
	inputCommand inputKind = iota
	inputNew
	inputBoard
	inputHelp
	inputQuit
)

type input struct {
	kind inputKind
	cmd  protocol.Command
	seed *int64
}

type conn struct {
	In  io.Reader
	Out io.Writer
}

// CLIPlayer plays a game from text typed into a terminal
type CLIPlayer struct {
	ge   GameEngine
	Conn *conn
}

func NewCLIPlayer(ge GameEngine, in io.Reader, out io.Writer) *CLIPlayer {
	return &CLIPlayer{
		ge:   ge,
		Conn: &conn{In: in, Out: out},
	}
}

// Run reads commands until the input ends, the player quits or ctx is done.
// Cancelling ctx is a clean exit.
func (p *CLIPlayer) Run(ctx context.Context) error {
	if p.ge.PlayState() == Idle {
		p.ge.Start(nil)
	}
	SendText(p.Conn.Out, welcomeText, p.ge.ID(), p.ge.Seed())
	p.showBoard()

	lines, scanErr := readLines(ctx, p.Conn.In)

	SendText(p.Conn.Out, promptText)
	for {
		var line string
		select {
		case <-ctx.Done():
			SendText(p.Conn.Out, "\n"+goodbyeText)
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			line = l
		}

		board, err := p.ge.Board()
		if err != nil {
			return err
		}

		in, err := parseInput(line, board)
		if err != nil {
			SendText(p.Conn.Out, "%s\n", err)
			SendText(p.Conn.Out, promptText)
			continue
		}

		switch in.kind {
		case inputQuit:
			SendText(p.Conn.Out, goodbyeText)
			return nil

		case inputHelp:
			SendText(p.Conn.Out, helpText)

		case inputBoard:
			p.showBoard()

		case inputNew:
			seed := p.ge.Start(in.seed)
			SendText(p.Conn.Out, welcomeText, p.ge.ID(), seed)
			p.showBoard()

		case inputCommand:
			p.play(in.cmd)
		}

		SendText(p.Conn.Out, promptText)
	}
}

// readLines scans r on its own goroutine, since a blocked read cannot be
// interrupted. The error channel receives once lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

func (p *CLIPlayer) play(cmd protocol.Command) {
	res, err := p.ge.Play(cmd)
	if err != nil {
		SendText(p.Conn.Out, "%s\n", err)
		return
	}

	if text := ResultText(res); text != "" {
		SendText(p.Conn.Out, "%s\n", text)
	}
	p.showBoard()

	if p.ge.PlayState() == Won {
		SendText(p.Conn.Out, wonText)
	}
}

func (p *CLIPlayer) showBoard() {
	board, err := p.ge.Board()
	if err != nil {
		SendText(p.Conn.Out, "%s\n", err)
		return
	}
	SendText(p.Conn.Out, "\n%s\n", BuildBoardText(board))
}

// parseInput turns a line of text into a command. Columns, rows and
// foundations are typed from 1 and checked against the board.
func parseInput(line string, b protocol.Board) (input, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return input{}, ErrUnknownInput
	}

	args := fields[1:]
	switch fields[0] {
	case "s", "stock":
		return input{kind: inputCommand, cmd: protocol.Stock()}, nil

	case "w", "waste":
		return input{kind: inputCommand, cmd: protocol.Waste()}, nil

	case "b", "bg", "background":
		return input{kind: inputCommand, cmd: protocol.Elsewhere()}, nil

	case "t", "tab", "tableau":
		if len(args) == 0 {
			return input{}, fmt.Errorf("%w: which column?", ErrMissingArgs)
		}
		col, err := parseIndex(args[0], len(b.Tableau))
		if err != nil {
			return input{}, fmt.Errorf("column %w", err)
		}

		column := b.Tableau[col]
		if len(column) == 0 {
			return input{kind: inputCommand, cmd: protocol.Tableau(col, 0)}, nil
		}

		row := len(column) - 1
		if len(args) > 1 {
			if row, err = parseIndex(args[1], len(column)); err != nil {
				return input{}, fmt.Errorf("row %w", err)
			}
		}
		return input{kind: inputCommand, cmd: protocol.Tableau(col, row)}, nil

	case "f", "found", "foundation":
		if len(args) == 0 {
			return input{}, fmt.Errorf("%w: which foundation?", ErrMissingArgs)
		}
		idx, err := parseIndex(args[0], len(b.Foundations))
		if err != nil {
			return input{}, fmt.Errorf("foundation %w", err)
		}
		return input{kind: inputCommand, cmd: protocol.Foundation(idx)}, nil

	case "n", "new":
		in := input{kind: inputNew}
		if len(args) > 0 {
			seed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return input{}, fmt.Errorf("invalid seed %q: %w", args[0], err)
			}
			in.seed = &seed
		}
		return in, nil

	case "board":
		return input{kind: inputBoard}, nil

	case "h", "help", "?":
		return input{kind: inputHelp}, nil

	case "q", "quit", "exit":
		return input{kind: inputQuit}, nil
	}

	return input{}, ErrUnknownInput
}

// parseIndex converts a 1-based number to a 0-based index below n
func parseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("%w: %q is not between 1 and %d", ErrOutOfRange, s, n)
	}
	return i - 1, nil
}
