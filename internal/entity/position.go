package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownSide = errors.New("unknown side")

// Side identifies who owns a row of holes and a store.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

const (
	sidePlayerName   = "player"
	sideOpponentName = "opponent"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

func (s Side) Valid() bool {
	return s == SidePlayer || s == SideOpponent
}

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return sidePlayerName
	case SideOpponent:
		return sideOpponentName
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSide, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case sidePlayerName:
		*s = SidePlayer
	case sideOpponentName:
		*s = SideOpponent
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSide, text)
	}
	return nil
}

type PositionKind string

const (
	KindHole  PositionKind = "hole"
	KindStore PositionKind = "store"
)

// Position names a board location. Index is meaningful for holes only.
type Position struct {
	Kind  PositionKind `json:"kind"`
	Side  Side         `json:"side"`
	Index int          `json:"index"`
}

func HoleAt(side Side, index int) Position {
	return Position{Kind: KindHole, Side: side, Index: index}
}

func StoreOf(side Side) Position {
	return Position{Kind: KindStore, Side: side, Index: -1}
}

func (p Position) IsHole() bool {
	return p.Kind == KindHole
}

func (p Position) IsStore() bool {
	return p.Kind == KindStore
}

func (p Position) String() string {
	if p.IsStore() {
		return p.Side.String() + ":store"
	}
	return fmt.Sprintf("%s:%d", p.Side, p.Index)
}
