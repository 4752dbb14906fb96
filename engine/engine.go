package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/utils/logger"
)

// Ledger records one outcome per (game, board) pair.
type Ledger interface {
	// Ensure atomically records the outcome for (gameID, boardID). When a
	// row already exists it is returned unchanged with created=false; the
	// first computation wins, later match counts are ignored. Must be safe
	// under concurrent invocation for the same key.
	Ensure(ctx context.Context, gameID, boardID uuid.UUID, matched int) (*models.WinningBoard, bool, error)
}

// Outcome is one board's scored result against one game.
type Outcome struct {
	Board        models.Board        `json:"board"`
	WinningBoard models.WinningBoard `json:"winningBoard"`
	Created      bool                `json:"created"`
}

// GameComputation is the result of a whole-game run: the outcome per
// eligible board, plus non-fatal per-board problems (unresolvable repeat
// chains). Re-running a completed computation returns the same outcomes with
// Created=false everywhere.
type GameComputation struct {
	GameID   uuid.UUID `json:"gameId"`
	Outcomes []Outcome `json:"outcomes"`
	Problems []Problem `json:"problems,omitempty"`
}

// Engine drives winning-board computation: propagation, matching and the
// idempotent ledger write.
type Engine struct {
	games  GameRegistry
	boards BoardStore
	ledger Ledger
	prop   *Propagator
}

func New(games GameRegistry, boards BoardStore, ledger Ledger) *Engine {
	return &Engine{
		games:  games,
		boards: boards,
		ledger: ledger,
		prop:   NewPropagator(games, boards),
	}
}

// Propagator exposes the repeat-chain resolver, e.g. for listing the games a
// board is active for.
func (e *Engine) Propagator() *Propagator {
	return e.prop
}

// ComputeForGame scores every eligible board against the game's published
// winning numbers. Fails with ErrGameNotFound / ErrGameNotReady before any
// write. Board scoring is independent: a ledger row either gets created here
// or was created by an earlier or concurrent run, both count as success.
func (e *Engine) ComputeForGame(ctx context.Context, gameID uuid.UUID) (*GameComputation, error) {
	game, err := e.games.Game(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.Drawn() {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotReady)
	}

	boards, problems, err := e.prop.BoardsFor(ctx, game)
	if err != nil {
		return nil, err
	}

	winning := NumberSet(game.WinningNumbers)
	comp := &GameComputation{
		GameID:   game.GameID,
		Outcomes: make([]Outcome, 0, len(boards)),
		Problems: problems,
	}
	created := 0
	for _, board := range boards {
		matched := MatchCount(NumberSet(board.ChosenNumbers), winning)
		row, fresh, err := e.ledger.Ensure(ctx, game.GameID, board.BoardID, matched)
		if err != nil {
			return nil, fmt.Errorf("record outcome for board %s: %w", board.BoardID, err)
		}
		if fresh {
			created++
		}
		comp.Outcomes = append(comp.Outcomes, Outcome{Board: board, WinningBoard: *row, Created: fresh})
	}

	if len(comp.Problems) > 0 {
		logger.Warnf("[Engine] game %s: %d boards skipped with unresolved repeat chains", game.GameID, len(comp.Problems))
	}
	logger.Infof("[Engine] game %s computed: %d boards, %d new rows",
		game.GameID, len(comp.Outcomes), created)
	return comp, nil
}

// ComputeForBoard scores a single board against its own game, the on-demand
// "did I win?" path. Fails with ErrBoardNotFound, or ErrGameNotReady while
// the board's game is still undrawn.
func (e *Engine) ComputeForBoard(ctx context.Context, boardID uuid.UUID) (*Outcome, error) {
	board, err := e.boards.Board(ctx, boardID)
	if err != nil {
		return nil, err
	}

	game, err := e.games.Game(ctx, board.GameID)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", boardID, err)
	}
	if !game.Drawn() {
		return nil, fmt.Errorf("board %s: no eligible drawn game yet: %w", boardID, ErrGameNotReady)
	}

	matched := MatchCount(NumberSet(board.ChosenNumbers), NumberSet(game.WinningNumbers))
	row, fresh, err := e.ledger.Ensure(ctx, game.GameID, board.BoardID, matched)
	if err != nil {
		return nil, fmt.Errorf("record outcome for board %s: %w", boardID, err)
	}

	logger.Debugf("[Engine] board %s checked against game %s: %d matched, created=%v",
		board.BoardID, game.GameID, row.NumbersMatched, fresh)
	return &Outcome{Board: *board, WinningBoard: *row, Created: fresh}, nil
}
