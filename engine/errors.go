package engine

import (
	"errors"

	"github.com/google/uuid"
)

// Precondition errors reject the whole request before any write happens.
// ErrResolutionGap is different: inside a batch it is demoted to a per-board
// Problem so one unresolvable repeat chain never aborts sibling boards.
var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameNotReady  = errors.New("game has no published winning numbers")
	ErrBoardNotFound = errors.New("board not found")
	ErrResolutionGap = errors.New("repeat chain cannot be resolved")
)

// Problem is a non-fatal, per-board warning collected during a batch
// computation.
type Problem struct {
	BoardID uuid.UUID `json:"boardId"`
	Reason  string    `json:"reason"`
}
