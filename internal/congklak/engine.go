package congklak

import (
	"fmt"
	"sync/atomic"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

// Reason explains why a move stopped.
type Reason string

const (
	// ReasonEmptyHole - the last seed fell into a hole that was empty.
	ReasonEmptyHole Reason = "empty_hole"
	// ReasonStore - the last seed fell into the mover's store.
	ReasonStore Reason = "store"
	// ReasonStreakCap - the last seed fell into a non-empty hole but no more relays are allowed.
	ReasonStreakCap Reason = "streak_cap"
)

// Outcome is the result of resolving one move.
type Outcome struct {
	Trace     []entity.StepEvent
	ExtraTurn bool
	Streak    int
	Reason    Reason
	Laps      int
}

// Engine resolves single moves against a board. It keeps no board state of its own.
type Engine struct {
	rules    entity.Rules
	seq      *Sequencer
	inFlight atomic.Bool
}

func NewEngine(rules entity.Rules) (*Engine, error) {
	seq, err := NewSequencer(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build sow sequences: %w", err)
	}

	return &Engine{rules: rules, seq: seq}, nil
}

func (that *Engine) Rules() entity.Rules {
	return that.rules
}

func (that *Engine) Sequencer() *Sequencer {
	return that.seq
}

// MaxSteps bounds the number of events a single move can emit on a board holding totalSeeds.
func (that *Engine) MaxSteps(totalSeeds int) int {
	return (that.rules.MaxExtraTurns + 1) * (1 + totalSeeds)
}

// ResolveMove sows the seeds of the side's hole, following relays, until the hand runs out
// on an empty hole, in the mover's store, or on a hole it may no longer relay from.
// Streak is the number of bonuses already earned in the side's current run of turns;
// the returned Outcome carries the updated value.
func (that *Engine) ResolveMove(board *entity.Board, side entity.Side, hole, streak int) (Outcome, error) {
	if !that.inFlight.CompareAndSwap(false, true) {
		return Outcome{}, apperror.ErrConcurrentMove
	}
	defer that.inFlight.Store(false)

	if board.HolesPerSide() != that.rules.HolesPerSide || len(board.Holes[entity.SideOpponent]) != that.rules.HolesPerSide {
		return Outcome{}, fmt.Errorf("%w: board has %d holes per side, rules want %d",
			apperror.ErrInvalidConfiguration, board.HolesPerSide(), that.rules.HolesPerSide)
	}

	cursor, err := that.seq.Locate(side, hole)
	if err != nil {
		return Outcome{}, err
	}

	hand, err := board.TakeAll(side, hole)
	if err != nil {
		return Outcome{}, err
	}

	start := entity.HoleAt(side, hole)
	out := Outcome{Streak: streak, Laps: 1}
	out.Trace = append(out.Trace, entity.StepEvent{Kind: entity.StepPickup, From: start, To: start, Hand: hand})

	for {
		from := that.seq.At(side, cursor)
		cursor = that.seq.Advance(cursor)
		target := that.seq.At(side, cursor)

		now, err := board.Deposit(target)
		if err != nil {
			return out, fmt.Errorf("failed to sow into %s: %w", target, err)
		}
		hand--

		out.Trace = append(out.Trace, entity.StepEvent{
			Kind:           entity.StepSow,
			From:           from,
			To:             target,
			SeedsAfterDrop: now,
			Hand:           hand,
		})

		if hand > 0 {
			continue
		}

		if target.IsStore() {
			out.Reason = ReasonStore
			if out.Streak < that.rules.MaxExtraTurns {
				out.Streak++
				out.ExtraTurn = true
			}
			return out, nil
		}

		if now == 1 {
			out.Reason = ReasonEmptyHole
			return out, nil
		}

		if out.Streak >= that.rules.MaxExtraTurns {
			out.Reason = ReasonStreakCap
			return out, nil
		}

		// relay: scoop the hole we just landed on and keep sowing from the next slot
		hand, err = board.TakeAll(target.Side, target.Index)
		if err != nil {
			return out, fmt.Errorf("failed to relay from %s: %w", target, err)
		}
		out.Streak++
		out.Laps++
		out.Trace = append(out.Trace, entity.StepEvent{Kind: entity.StepPickup, From: target, To: target, Hand: hand})
	}
}
