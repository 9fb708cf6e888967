// Package command parses the one-line commands typed during play.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/u9djfgoj/gigathon-project/internal/game"
)

var (
	ErrUnknown = errors.New("unknown command")
	ErrSyntax  = errors.New("invalid command")
)

// Kind identifies what a command asks for
type Kind int

const (
	Draw Kind = iota
	Move
	Foundation
	Auto
	NewGame
	Quit
	Help
)

// Command is a parsed line of input. Source and Dest are only set for Move and
// Foundation.
type Command struct {
	Kind   Kind
	Source game.Source
	Dest   int
}

// WasteToken names the waste pile as a move source
const WasteToken = "waste"

// Usage lists the accepted commands
const Usage = `Commands:
  d                     draw a card from the stock
  m <from> <card> <to>  move cards between columns (from: 0-6 or waste)
  f <from> <card>       move a card to its foundation
  a                     move every card that fits to the foundations
  n                     new game
  h                     show this help
  q                     quit`

// Parse reads a command line such as "m 3 2 5" or "f waste 0"
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	args := fields[1:]
	switch fields[0] {
	case "d", "draw":
		return simple(Draw, args)
	case "a", "auto":
		return simple(Auto, args)
	case "n", "new":
		return simple(NewGame, args)
	case "q", "quit", "exit":
		return simple(Quit, args)
	case "h", "help", "?":
		return simple(Help, args)
	case "m", "move":
		if len(args) != 3 {
			return Command{}, fmt.Errorf("%w: move takes <from> <card> <to>", ErrSyntax)
		}
		src, err := source(args[0], args[1])
		if err != nil {
			return Command{}, err
		}
		dest, err := column(args[2])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Move, Source: src, Dest: dest}, nil
	case "f", "foundation":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: foundation takes <from> <card>", ErrSyntax)
		}
		src, err := source(args[0], args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Foundation, Source: src}, nil
	}

	return Command{}, fmt.Errorf("%w: %s", ErrUnknown, fields[0])
}

func simple(kind Kind, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, fmt.Errorf("%w: unexpected arguments %q", ErrSyntax, strings.Join(args, " "))
	}
	return Command{Kind: kind}, nil
}

// source parses a source pile and card index. The index is still checked when
// the source is the waste, even though it is not used.
func source(from, index string) (game.Source, error) {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 {
		return game.Source{}, fmt.Errorf("%w: card index %q is not a non-negative number", ErrSyntax, index)
	}
	if from == WasteToken || from == "w" {
		return game.FromWaste(), nil
	}
	col, err := column(from)
	if err != nil {
		return game.Source{}, err
	}
	return game.FromColumn(col, i), nil
}

func column(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= game.NumColumns {
		return 0, fmt.Errorf("%w: column %q is not between 0 and %d", ErrSyntax, s, game.NumColumns-1)
	}
	return n, nil
}
