package bot

import (
	"errors"
	"fmt"
)

var ErrUnknownStrategy = errors.New("unknown bot strategy")

const (
	FirstNonEmptyName = "first-non-empty"
	StoreSeekerName   = "store-seeker"
)

// Strategy picks a hole for the automated side. It sees only that side's hole counts and
// must return -1 when no hole has seeds.
type Strategy interface {
	ChooseMove(holes []int) int
}

type StrategyFunc func(holes []int) int

func (f StrategyFunc) ChooseMove(holes []int) int {
	return f(holes)
}

// FirstNonEmpty plays the lowest-index hole that holds seeds.
type FirstNonEmpty struct{}

func (FirstNonEmpty) ChooseMove(holes []int) int {
	for i, count := range holes {
		if count > 0 {
			return i
		}
	}
	return -1
}

// StoreSeeker plays a hole whose last seed ends in the own store, closest to the store first.
// Without such a hole it falls back to FirstNonEmpty.
type StoreSeeker struct{}

func (StoreSeeker) ChooseMove(holes []int) int {
	n := len(holes)
	cycle := 2*n + 1

	for i := n - 1; i >= 0; i-- {
		if holes[i] > 0 && holes[i]%cycle == n-i {
			return i
		}
	}

	return FirstNonEmpty{}.ChooseMove(holes)
}

// ByName returns the strategy registered under name.
func ByName(name string) (Strategy, error) {
	switch name {
	case FirstNonEmptyName, "":
		return FirstNonEmpty{}, nil
	case StoreSeekerName:
		return StoreSeeker{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
}
