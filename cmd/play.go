package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/u9djfgoj/gigathon-project/internal/command"
	"github.com/u9djfgoj/gigathon-project/internal/config"
	"github.com/u9djfgoj/gigathon-project/internal/game"
	"github.com/u9djfgoj/gigathon-project/internal/render"
	"github.com/u9djfgoj/gigathon-project/internal/validator"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	Long: `Play deals a new game and reads commands from standard input until you
win or quit. Type 'h' during play for the list of commands.

Examples:
  solitaire play
  solitaire play --seed 42
  solitaire play --check --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	RootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	addGameFlags(cmd)
	cmd.Flags().Bool("check", false, "Check the table rules after every command and log any violation")
}

// addGameFlags registers the flags shared by every command that deals a game
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Deal a reproducible game from this seed (0 deals a random game)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	r, err := newRenderer(out)
	if err != nil {
		return err
	}

	check, _ := cmd.Flags().GetBool("check")
	s := &session{
		newGame:  gameFactory(cmd, settings.config, settings.logger),
		renderer: r,
		check:    check,
		logger:   settings.logger,
		in:       bufio.NewScanner(cmd.InOrStdin()),
		out:      out,
	}
	return s.run()
}

// gameFactory returns a function dealing new games. With a seed the first deal
// is reproducible and later deals continue from the same random source.
func gameFactory(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) func() *game.Game {
	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	opts := []game.Option{game.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, game.WithSeed(seed))
	}
	return func() *game.Game {
		return game.New(opts...)
	}
}

func newRenderer(out io.Writer) (*render.Renderer, error) {
	cfg := settings.config
	opts := render.Options{
		Color:      cfg.Color,
		ASCII:      cfg.ASCII(),
		RedColor:   cfg.RedColor,
		BlackColor: cfg.BlackColor,
	}
	if f, ok := out.(*os.File); ok {
		tty, width := render.Terminal(int(f.Fd()))
		opts.Color = opts.Color && tty
		opts.Clear = tty
		opts.Width = width
	} else {
		opts.Color = false
	}
	return render.New(opts)
}

// session is one interactive run of the game, possibly spanning several deals
type session struct {
	game     *game.Game
	newGame  func() *game.Game
	renderer *render.Renderer
	check    bool
	logger   *slog.Logger
	in       *bufio.Scanner
	out      io.Writer
	status   string
}

const prompt = "\nEnter command (h for help): "

func (s *session) run() error {
	s.game = s.newGame()
	s.logger.Info("game started", "game", s.game.ID().String())

	for {
		if err := s.renderer.Render(s.out, s.game); err != nil {
			return err
		}
		if s.status != "" {
			fmt.Fprintln(s.out, s.status)
			s.status = ""
		}

		if s.game.IsWon() {
			fmt.Fprintln(s.out, "Congratulations! You won!")
			s.logger.Info("game won", "game", s.game.ID().String(), "moves", s.game.Moves())
			return nil
		}

		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}

		c, err := command.Parse(line)
		if err != nil {
			s.status = describe(err)
			continue
		}
		if c.Kind == command.Quit {
			fmt.Fprintln(s.out, "Thanks for playing!")
			return nil
		}
		s.apply(c)
	}
}

func (s *session) apply(c command.Command) {
	var err error
	switch c.Kind {
	case command.Draw:
		s.game.Draw()
	case command.Move:
		err = s.game.MoveCard(c.Source, c.Dest)
	case command.Foundation:
		err = s.game.MoveToFoundation(c.Source)
	case command.Auto:
		if n := s.game.AutoFoundation(); n == 0 {
			s.status = "No card can go to a foundation."
		}
	case command.NewGame:
		s.game = s.newGame()
		s.logger.Info("game started", "game", s.game.ID().String())
	case command.Help:
		s.status = command.Usage
	}

	if err != nil {
		s.status = describe(err)
	}
	if s.check {
		s.validate()
	}
}

func (s *session) validate() {
	results := validator.Validate(s.game.Snapshot())
	for _, e := range results.Errors {
		s.logger.Error("table rule broken", "game", s.game.ID().String(), "error", e)
	}
	for _, w := range results.Warnings {
		s.logger.Warn("table looks wrong", "game", s.game.ID().String(), "warning", w)
	}
}

// describe turns an error into the message shown under the table
func describe(err error) string {
	var me *game.MoveError
	switch {
	case errors.As(err, &me):
		return fmt.Sprintf("Illegal move: %s.", me.Reason)
	case errors.Is(err, command.ErrUnknown):
		return "Unknown command! Type h for help."
	case errors.Is(err, command.ErrSyntax):
		return fmt.Sprintf("Invalid command: %s", strings.TrimPrefix(err.Error(), command.ErrSyntax.Error()+": "))
	default:
		return err.Error()
	}
}
