package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
)

var ErrInvalidPosition = errors.New("invalid board position")

// Board holds seed counts per hole and per store. Holes and Stores are indexed by Side.
type Board struct {
	Holes  [2][]int `json:"holes"`
	Stores [2]int   `json:"stores"`
}

// NewBoard sets up a board with every hole holding the initial seed count and empty stores.
func NewBoard(rules Rules) *Board {
	board := &Board{}
	for _, side := range []Side{SidePlayer, SideOpponent} {
		board.Holes[side] = make([]int, rules.HolesPerSide)
		for i := range board.Holes[side] {
			board.Holes[side][i] = rules.InitialSeeds
		}
	}

	return board
}

// NewEmptyBoard returns a board with the given number of holes per side and no seeds.
func NewEmptyBoard(holesPerSide int) *Board {
	return &Board{
		Holes: [2][]int{make([]int, holesPerSide), make([]int, holesPerSide)},
	}
}

func (that *Board) HolesPerSide() int {
	return len(that.Holes[SidePlayer])
}

// TakeAll empties a hole and returns the number of seeds it held.
func (that *Board) TakeAll(side Side, hole int) (int, error) {
	if !side.Valid() || hole < 0 || hole >= len(that.Holes[side]) {
		return 0, fmt.Errorf("%w: %s hole %d", apperror.ErrInvalidHole, side, hole)
	}

	count := that.Holes[side][hole]
	if count == 0 {
		return 0, fmt.Errorf("%w: %s hole %d", apperror.ErrEmptyHole, side, hole)
	}

	that.Holes[side][hole] = 0

	return count, nil
}

// Deposit drops one seed at the position and returns the new count there.
func (that *Board) Deposit(pos Position) (int, error) {
	if !pos.Side.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}

	switch pos.Kind {
	case KindStore:
		that.Stores[pos.Side]++
		return that.Stores[pos.Side], nil
	case KindHole:
		if pos.Index < 0 || pos.Index >= len(that.Holes[pos.Side]) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
		}
		that.Holes[pos.Side][pos.Index]++
		return that.Holes[pos.Side][pos.Index], nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
}

// Count returns the seeds at a position, or zero if the position is not on this board.
func (that *Board) Count(pos Position) int {
	if !pos.Side.Valid() {
		return 0
	}

	if pos.IsStore() {
		return that.Stores[pos.Side]
	}

	if pos.Index < 0 || pos.Index >= len(that.Holes[pos.Side]) {
		return 0
	}

	return that.Holes[pos.Side][pos.Index]
}

// SweepRemaining moves every seed left in the side's holes into its store.
func (that *Board) SweepRemaining(side Side) int {
	swept := 0
	for i, count := range that.Holes[side] {
		swept += count
		that.Holes[side][i] = 0
	}
	that.Stores[side] += swept

	return swept
}

// SideEmpty reports whether all holes of the side are empty.
func (that *Board) SideEmpty(side Side) bool {
	for _, count := range that.Holes[side] {
		if count > 0 {
			return false
		}
	}

	return true
}

// Total is the number of seeds on the board, stores included.
func (that *Board) Total() int {
	total := that.Stores[SidePlayer] + that.Stores[SideOpponent]
	for _, side := range []Side{SidePlayer, SideOpponent} {
		for _, count := range that.Holes[side] {
			total += count
		}
	}

	return total
}

// HolesOf returns a copy of the side's hole counts.
func (that *Board) HolesOf(side Side) []int {
	return slices.Clone(that.Holes[side])
}

func (that *Board) Clone() *Board {
	return &Board{
		Holes:  [2][]int{slices.Clone(that.Holes[SidePlayer]), slices.Clone(that.Holes[SideOpponent])},
		Stores: that.Stores,
	}
}
