package congklak

import (
	"fmt"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

// SowSequence is one side's sowing cycle: own holes, own store, then the opponent's holes.
// The opponent's store is never part of it.
type SowSequence []entity.Position

// Sequencer owns the two sowing cycles of a game. They are built once and never change.
type Sequencer struct {
	holesPerSide int
	sequences    [2]SowSequence
}

func NewSequencer(rules entity.Rules) (*Sequencer, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	that := &Sequencer{holesPerSide: rules.HolesPerSide}
	for _, side := range []entity.Side{entity.SidePlayer, entity.SideOpponent} {
		that.sequences[side] = buildSequence(side, rules.HolesPerSide)
	}

	for _, side := range []entity.Side{entity.SidePlayer, entity.SideOpponent} {
		if len(that.sequences[side]) != rules.SequenceLen() {
			return nil, fmt.Errorf("%w: %s sequence has %d slots, want %d",
				apperror.ErrInvalidConfiguration, side, len(that.sequences[side]), rules.SequenceLen())
		}
	}

	return that, nil
}

func buildSequence(side entity.Side, holesPerSide int) SowSequence {
	seq := make(SowSequence, 0, 2*holesPerSide+1)
	for i := range holesPerSide {
		seq = append(seq, entity.HoleAt(side, i))
	}
	seq = append(seq, entity.StoreOf(side))
	for i := range holesPerSide {
		seq = append(seq, entity.HoleAt(side.Other(), i))
	}

	return seq
}

func (that *Sequencer) Len() int {
	return len(that.sequences[entity.SidePlayer])
}

// Sequence returns a copy of the side's cycle.
func (that *Sequencer) Sequence(side entity.Side) SowSequence {
	return append(SowSequence(nil), that.sequences[side]...)
}

// Locate returns the cursor of one of the side's own holes within its cycle.
func (that *Sequencer) Locate(side entity.Side, hole int) (int, error) {
	if !side.Valid() {
		return 0, fmt.Errorf("%w: %s", entity.ErrUnknownSide, side)
	}

	target := entity.HoleAt(side, hole)
	for cursor, pos := range that.sequences[side] {
		if pos == target {
			return cursor, nil
		}
	}

	return 0, fmt.Errorf("%w: %s hole %d", apperror.ErrInvalidHole, side, hole)
}

func (that *Sequencer) Advance(cursor int) int {
	return (cursor + 1) % that.Len()
}

func (that *Sequencer) At(side entity.Side, cursor int) entity.Position {
	return that.sequences[side][cursor]
}
