package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fenwick-labs/chesskit/internal/model"
)

// ErrMatchNotFound is returned for lookups of a match ID the manager does
// not hold.
var ErrMatchNotFound = errors.New("match not found")

// MatchManager owns every live match, keyed by match ID. Like the matches it
// holds it is single-owner state; callers that share one must serialize
// access externally.
type MatchManager struct {
	matches map[string]*model.Match
}

func NewMatchManager() *MatchManager {
	return &MatchManager{
		matches: make(map[string]*model.Match),
	}
}

// Create starts a new match with the standard layout and returns its ID.
func (mm *MatchManager) Create() string {
	matchID := uuid.New().String()
	mm.matches[matchID] = model.NewMatch(nil)
	return matchID
}

func (mm *MatchManager) Get(matchID string) (*model.Match, error) {
	match, exists := mm.matches[matchID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return match, nil
}

// Move moves the labeled piece within the given match. The boolean reports
// move legality; the error reports unknown matches and unknown piece labels.
func (mm *MatchManager) Move(matchID, label, position string) (bool, error) {
	match, err := mm.Get(matchID)
	if err != nil {
		return false, err
	}
	return match.Move(label, position)
}

// Reset restores the match to the standard layout with an empty log.
func (mm *MatchManager) Reset(matchID string) error {
	match, err := mm.Get(matchID)
	if err != nil {
		return err
	}
	match.Reset()
	return nil
}

// Log returns a copy of the match's move log.
func (mm *MatchManager) Log(matchID string) ([]model.Move, error) {
	match, err := mm.Get(matchID)
	if err != nil {
		return nil, err
	}
	log := make([]model.Move, len(match.Log))
	copy(log, match.Log)
	return log, nil
}
