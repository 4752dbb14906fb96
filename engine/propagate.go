package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lottohq/lotto-backend/models"
)

// GameRegistry is the engine's read-only view of games.
type GameRegistry interface {
	// Game returns the game by id, or ErrGameNotFound.
	Game(ctx context.Context, id uuid.UUID) (*models.Game, error)
	// GamesInWindow returns every game whose expiration date lies in
	// [from, until], ordered by expiration date then id.
	GamesInWindow(ctx context.Context, from, until time.Time) ([]models.Game, error)
}

// BoardStore is the engine's read-only view of purchased boards.
type BoardStore interface {
	// Board returns the board by id, or ErrBoardNotFound.
	Board(ctx context.Context, id uuid.UUID) (*models.Board, error)
	// BoardsByGame returns the boards purchased directly for a game.
	BoardsByGame(ctx context.Context, gameID uuid.UUID) ([]models.Board, error)
	// RepeatingBoardsBefore returns repeating boards whose originating
	// game expires strictly before the given moment.
	RepeatingBoardsBefore(ctx context.Context, expiration time.Time) ([]models.Board, error)
}

// Propagator resolves which games a repeating board spans and, inversely,
// which boards are eligible for a given game. A board's active window is its
// own game plus every existing game whose expiration falls between the
// originating game's and the repeat-until game's, in expiration order.
type Propagator struct {
	games  GameRegistry
	boards BoardStore
}

func NewPropagator(games GameRegistry, boards BoardStore) *Propagator {
	return &Propagator{games: games, boards: boards}
}

// GamesFor returns the ids of the games the board is active for, originating
// game first. Only games that exist in the registry are returned; a game
// added later joins the window on the next call. Returns a wrapped
// ErrResolutionGap when the originating or repeat-until game is missing.
func (p *Propagator) GamesFor(ctx context.Context, board *models.Board) ([]uuid.UUID, error) {
	origin, err := p.games.Game(ctx, board.GameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, fmt.Errorf("%w: originating game %s is missing", ErrResolutionGap, board.GameID)
		}
		return nil, err
	}

	if !board.IsRepeating || board.RepeatUntilGameID == nil {
		return []uuid.UUID{origin.GameID}, nil
	}

	until, err := p.games.Game(ctx, *board.RepeatUntilGameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, fmt.Errorf("%w: repeat-until game %s is missing", ErrResolutionGap, *board.RepeatUntilGameID)
		}
		return nil, err
	}

	window, err := p.games.GamesInWindow(ctx, origin.ExpirationDate, until.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("resolve repeat window: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(window)+1)
	ids = append(ids, origin.GameID)
	for _, g := range window {
		if g.GameID != origin.GameID {
			ids = append(ids, g.GameID)
		}
	}
	return ids, nil
}

// BoardsFor returns every board eligible for scoring against the game:
// boards purchased for it directly, plus repeating boards from earlier games
// whose repeat-until game is at or after it. Boards whose repeat chain cannot
// be resolved are reported as Problems instead of aborting the batch.
func (p *Propagator) BoardsFor(ctx context.Context, game *models.Game) ([]models.Board, []Problem, error) {
	direct, err := p.boards.BoardsByGame(ctx, game.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("list boards for game %s: %w", game.GameID, err)
	}

	candidates, err := p.boards.RepeatingBoardsBefore(ctx, game.ExpirationDate)
	if err != nil {
		return nil, nil, fmt.Errorf("list repeating boards: %w", err)
	}

	eligible := direct
	var problems []Problem
	for _, b := range candidates {
		if b.RepeatUntilGameID == nil {
			problems = append(problems, Problem{
				BoardID: b.BoardID,
				Reason:  "repeating board has no repeat-until game",
			})
			continue
		}
		until, err := p.games.Game(ctx, *b.RepeatUntilGameID)
		if err != nil {
			if errors.Is(err, ErrGameNotFound) {
				problems = append(problems, Problem{
					BoardID: b.BoardID,
					Reason:  fmt.Sprintf("repeat-until game %s is missing from the registry", *b.RepeatUntilGameID),
				})
				continue
			}
			return nil, nil, err
		}
		if !until.ExpirationDate.Before(game.ExpirationDate) {
			eligible = append(eligible, b)
		}
	}

	// Stable order: purchase time, then id, so repeated runs return the
	// same listing.
	sort.Slice(eligible, func(i, j int) bool {
		if !eligible[i].Timestamp.Equal(eligible[j].Timestamp) {
			return eligible[i].Timestamp.Before(eligible[j].Timestamp)
		}
		return eligible[i].BoardID.String() < eligible[j].BoardID.String()
	})

	return eligible, problems, nil
}
