package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	ModeHumans   = "h"
	ModeComputer = "c"

	DifficultyLuck = "luck"
	DifficultyEasy = "easy"
)

var (
	modeChoices       = []string{"h", "c", "H", "C"}
	firstMarkChoices  = []string{string(entity.PlayerX), string(entity.PlayerO)}
	difficultyChoices = []string{"luck", "Luck", "easy", "Easy"}
)

type input interface {
	ReadInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error)
	ReadChoice(ctx context.Context, prompt string, allowed []string) (string, error)
	Notify(message string)
}

type renderer interface {
	Render(board *entity.Board)
	Mark(mark entity.Mark) string
}

// Session talks to the user, sets games up and reports their results.
type Session struct {
	logger   *slog.Logger
	input    input
	renderer renderer
	picker   tictactoe.Picker
	board    config.Board
}

func NewSession(logger *slog.Logger, input input, renderer renderer, picker tictactoe.Picker, board config.Board) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		input:    input,
		renderer: renderer,
		picker:   picker,
		board:    board,
	}
}

// Run - plays rounds until a game between two humans is over or the input ends.
// A game against the computer is followed by a new round.
func (that *Session) Run(ctx context.Context) error {
	for round := 1; ; round++ {
		again, err := that.playRound(ctx, round)
		if errors.Is(err, io.EOF) {
			that.logger.Info("input closed, session finished", "rounds", round)
			return nil
		}

		if err != nil {
			return fmt.Errorf("round %d failed: %w", round, err)
		}

		if !again {
			return nil
		}
	}
}

func (that *Session) playRound(ctx context.Context, round int) (bool, error) {
	size, err := that.input.ReadInt(ctx, "Enter board size", that.board.MinSize, that.board.MaxSize)
	if err != nil {
		return false, fmt.Errorf("failed to read board size: %w", err)
	}

	mode, err := that.input.ReadChoice(ctx, "Which mode? h or c", modeChoices)
	if err != nil {
		return false, fmt.Errorf("failed to read mode: %w", err)
	}

	mode = strings.ToLower(mode)
	log := that.logger.With("gameID", uuid.NewString(), "round", round, "mode", mode, "size", size)
	log.Info("game started")

	board := entity.NewBoard(size)
	if mode == ModeHumans {
		return false, that.playHumans(ctx, log, board)
	}

	return true, that.playComputer(ctx, log, board)
}

func (that *Session) playHumans(ctx context.Context, log *slog.Logger, board *entity.Board) error {
	answer, err := that.input.ReadChoice(ctx, "Who moves first? X or O", firstMarkChoices)
	if err != nil {
		return fmt.Errorf("failed to read first player: %w", err)
	}

	first, _ := entity.ParseMark(answer)
	human := tictactoe.NewHumanMoveSource(that.input)

	listener := &consoleListener{
		input:    that.input,
		renderer: that.renderer,
		announce: func(mark entity.Mark) string {
			return fmt.Sprintf("Player %s moves", that.renderer.Mark(mark))
		},
	}

	that.renderer.Render(board)

	controller := tictactoe.NewGameController(log, listener)
	outcome, err := controller.Run(ctx, board, first, func(entity.Mark) tictactoe.MoveSource {
		return human
	})
	if err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	if outcome.Status == tictactoe.StatusWin {
		that.input.Notify(fmt.Sprintf("Player %s wins", that.renderer.Mark(outcome.Winner)))
	} else {
		that.input.Notify("Draw")
	}

	return nil
}

func (that *Session) playComputer(ctx context.Context, log *slog.Logger, board *entity.Board) error {
	difficulty, err := that.readDifficulty(ctx)
	if err != nil {
		return err
	}

	first := tictactoe.FlipStartingTurn(that.picker)
	roles := tictactoe.AssignRoles(first)
	log = log.With("difficulty", difficulty, "first", first.String(), "human", roles.Human)

	if first == tictactoe.HumanTurn {
		that.input.Notify(fmt.Sprintf("Coin toss: you move first (%s)", that.renderer.Mark(roles.Human)))
	} else {
		that.input.Notify(fmt.Sprintf("Coin toss: the computer moves first (%s), you play %s",
			that.renderer.Mark(roles.Computer), that.renderer.Mark(roles.Human)))
	}

	human := tictactoe.NewHumanMoveSource(that.input)
	computer := tictactoe.NewRandomMoveSource(tictactoe.NewAvailableMoves(board), that.picker)

	listener := &consoleListener{
		input:    that.input,
		renderer: that.renderer,
		announce: func(mark entity.Mark) string {
			if roles.TurnOf(mark) == tictactoe.HumanTurn {
				return "Your turn"
			}
			return "Computer's turn"
		},
	}

	that.renderer.Render(board)

	controller := tictactoe.NewGameController(log, listener)
	outcome, err := controller.Run(ctx, board, entity.PlayerX, roles.SourceFor(human, computer))
	if err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	switch {
	case outcome.Status == tictactoe.StatusDraw:
		that.input.Notify("Draw")
	case outcome.Winner == roles.Human:
		that.input.Notify("You win")
	default:
		that.input.Notify("Computer wins")
	}

	return nil
}

// readDifficulty - only "luck" is implemented, "easy" falls back to it.
func (that *Session) readDifficulty(ctx context.Context) (string, error) {
	answer, err := that.input.ReadChoice(ctx, "Choose difficulty: luck or easy", difficultyChoices)
	if err != nil {
		return "", fmt.Errorf("failed to read difficulty: %w", err)
	}

	if strings.ToLower(answer) == DifficultyEasy {
		that.input.Notify("Difficulty 'easy' is not available yet, 'luck' is selected")
	}

	return DifficultyLuck, nil
}

type consoleListener struct {
	input    input
	renderer renderer
	announce func(mark entity.Mark) string
}

func (that *consoleListener) TurnStarted(mark entity.Mark) {
	that.input.Notify(that.announce(mark))
}

func (that *consoleListener) MoveApplied(_ entity.Mark, _ entity.Cell, board *entity.Board) {
	that.renderer.Render(board)
}
