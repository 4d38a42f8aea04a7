package entity

import (
	"fmt"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
)

const (
	DefaultHolesPerSide  = 7
	DefaultInitialSeeds  = 7
	DefaultMaxExtraTurns = 3
)

// Rules are the engine parameters of a game variant.
type Rules struct {
	HolesPerSide  int `yaml:"holes-per-side" json:"holes_per_side" env-default:"7"`
	InitialSeeds  int `yaml:"initial-seeds" json:"initial_seeds" env-default:"7"`
	MaxExtraTurns int `yaml:"max-extra-turns" json:"max_extra_turns" env-default:"3"`
}

func DefaultRules() Rules {
	return Rules{
		HolesPerSide:  DefaultHolesPerSide,
		InitialSeeds:  DefaultInitialSeeds,
		MaxExtraTurns: DefaultMaxExtraTurns,
	}
}

func (that Rules) Validate() error {
	if that.HolesPerSide <= 0 {
		return fmt.Errorf("%w: holes per side must be positive, got %d", apperror.ErrInvalidConfiguration, that.HolesPerSide)
	}

	// an empty board has no legal first move and never reaches the end check
	if that.InitialSeeds <= 0 {
		return fmt.Errorf("%w: initial seeds must be positive, got %d", apperror.ErrInvalidConfiguration, that.InitialSeeds)
	}

	if that.MaxExtraTurns < 0 {
		return fmt.Errorf("%w: extra turn cap must not be negative, got %d", apperror.ErrInvalidConfiguration, that.MaxExtraTurns)
	}

	return nil
}

// SequenceLen is the length of one side's sowing cycle: own holes, own store, opponent holes.
func (that Rules) SequenceLen() int {
	return 2*that.HolesPerSide + 1
}

// TotalSeeds is the number of seeds on a freshly set up board.
func (that Rules) TotalSeeds() int {
	return 2 * that.HolesPerSide * that.InitialSeeds
}
