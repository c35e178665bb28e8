package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Listener is told about the progress of a game, e.g. to draw the board.
type Listener interface {
	TurnStarted(mark entity.Mark)
	MoveApplied(mark entity.Mark, cell entity.Cell, board *entity.Board)
}

type GameController struct {
	logger   *slog.Logger
	listener Listener
}

func NewGameController(logger *slog.Logger, listener Listener) *GameController {
	if listener == nil {
		listener = noopListener{}
	}

	return &GameController{
		logger:   logger,
		listener: listener,
	}
}

// Run - plays on the board until someone fills a row or a column or the board is full.
// sourceFor hands out the move source of the player owning the given mark.
func (that *GameController) Run(
	ctx context.Context,
	board *entity.Board,
	first entity.Mark,
	sourceFor func(entity.Mark) MoveSource,
) (Outcome, error) {
	log := that.logger.With("method", "Run", "size", board.Size())

	turns := NewTurnController(first, board.Capacity())
	for !turns.IsExhausted() {
		if err := ctx.Err(); err != nil {
			return ongoing(turns), fmt.Errorf("game interrupted: %w", err)
		}

		mark := turns.Active()
		that.listener.TurnStarted(mark)

		cell, err := sourceFor(mark).NextMove(ctx, board)
		if err != nil {
			return ongoing(turns), fmt.Errorf("failed to get move of player %s: %w", mark, err)
		}

		if err = board.Place(cell.Row, cell.Col, mark); err != nil {
			return ongoing(turns), fmt.Errorf("failed to make turn: %w", err)
		}

		turns.Record()
		notifyObservers(sourceFor, cell, mark)

		log.Debug("move applied", "mark", mark, "row", cell.Row, "col", cell.Col, "moves", turns.Moves())
		that.listener.MoveApplied(mark, cell, board)

		if outcome := Evaluate(board, turns.Moves(), mark); outcome.IsFinished() {
			log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner, "moves", outcome.Moves)
			return outcome, nil
		}

		turns.Advance()
	}

	log.Info("game finished", "status", StatusDraw, "moves", turns.Moves())

	return Outcome{Status: StatusDraw, Moves: turns.Moves()}, nil
}

func ongoing(turns *TurnController) Outcome {
	return Outcome{Status: StatusOngoing, Moves: turns.Moves()}
}

func notifyObservers(sourceFor func(entity.Mark) MoveSource, cell entity.Cell, mark entity.Mark) {
	for _, owner := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		if observer, ok := sourceFor(owner).(MoveObserver); ok {
			observer.ObserveMove(cell, mark)
		}
	}
}

type noopListener struct{}

func (noopListener) TurnStarted(entity.Mark) {}

func (noopListener) MoveApplied(entity.Mark, entity.Cell, *entity.Board) {}
