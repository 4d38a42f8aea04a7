package congklak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

func TestNewSequencer(t *testing.T) {
	t.Run("Builds both cycles", func(t *testing.T) {
		// Given: the standard rules
		seq, err := NewSequencer(entity.DefaultRules())
		require.NoError(t, err)

		// Then: each cycle has 15 slots in sowing order
		assert.Equal(t, 15, seq.Len())

		player := seq.Sequence(entity.SidePlayer)
		assert.Equal(t, entity.HoleAt(entity.SidePlayer, 0), player[0])
		assert.Equal(t, entity.HoleAt(entity.SidePlayer, 6), player[6])
		assert.Equal(t, entity.StoreOf(entity.SidePlayer), player[7])
		assert.Equal(t, entity.HoleAt(entity.SideOpponent, 0), player[8])
		assert.Equal(t, entity.HoleAt(entity.SideOpponent, 6), player[14])

		opponent := seq.Sequence(entity.SideOpponent)
		assert.Equal(t, entity.StoreOf(entity.SideOpponent), opponent[7])
		assert.Equal(t, entity.HoleAt(entity.SidePlayer, 0), opponent[8])
	})

	t.Run("Never contains the opponent's store", func(t *testing.T) {
		seq, err := NewSequencer(entity.DefaultRules())
		require.NoError(t, err)

		for _, side := range []entity.Side{entity.SidePlayer, entity.SideOpponent} {
			assert.NotContains(t, seq.Sequence(side), entity.StoreOf(side.Other()))
			assert.Contains(t, seq.Sequence(side), entity.StoreOf(side))
		}
	})

	t.Run("Cycles are each other shifted by one row and store", func(t *testing.T) {
		seq, err := NewSequencer(entity.DefaultRules())
		require.NoError(t, err)

		// player: P0..P6, P-store, O0..O6; opponent: O0..O6, O-store, P0..P6
		player := seq.Sequence(entity.SidePlayer)
		opponent := seq.Sequence(entity.SideOpponent)
		require.Len(t, opponent, 15)

		for i := range opponent {
			switch {
			case i < 7:
				assert.Equal(t, player[i+8], opponent[i], "slot %d", i)
			case i == 7:
				assert.Equal(t, entity.StoreOf(entity.SideOpponent), opponent[i])
			default:
				assert.Equal(t, player[i-8], opponent[i], "slot %d", i)
			}
		}
	})

	t.Run("Rejects invalid rules", func(t *testing.T) {
		_, err := NewSequencer(entity.Rules{HolesPerSide: 0, InitialSeeds: 7, MaxExtraTurns: 3})
		assert.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})

	t.Run("Follows a variant board size", func(t *testing.T) {
		seq, err := NewSequencer(entity.Rules{HolesPerSide: 5, InitialSeeds: 5, MaxExtraTurns: 3})
		require.NoError(t, err)
		assert.Equal(t, 11, seq.Len())
		assert.Equal(t, entity.StoreOf(entity.SidePlayer), seq.At(entity.SidePlayer, 5))
	})
}

func TestSequencer_LocateAndAdvance(t *testing.T) {
	seq, err := NewSequencer(entity.DefaultRules())
	require.NoError(t, err)

	t.Run("A full lap returns to the starting cursor", func(t *testing.T) {
		for _, side := range []entity.Side{entity.SidePlayer, entity.SideOpponent} {
			for hole := range 7 {
				// Given: the cursor of an own hole
				start, err := seq.Locate(side, hole)
				require.NoError(t, err)
				assert.Equal(t, entity.HoleAt(side, hole), seq.At(side, start))

				// When: advancing once per slot
				cursor := start
				visited := make(map[entity.Position]bool)
				for range seq.Len() {
					cursor = seq.Advance(cursor)
					visited[seq.At(side, cursor)] = true
				}

				// Then: every slot was visited once and the cursor is back
				assert.Equal(t, start, cursor)
				assert.Len(t, visited, seq.Len())
			}
		}
	})

	t.Run("Out of range hole is not found", func(t *testing.T) {
		_, err := seq.Locate(entity.SidePlayer, 7)
		assert.ErrorIs(t, err, apperror.ErrInvalidHole)

		_, err = seq.Locate(entity.SideOpponent, -1)
		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Unknown side is rejected", func(t *testing.T) {
		_, err := seq.Locate(entity.Side(5), 0)
		assert.ErrorIs(t, err, entity.ErrUnknownSide)
	})
}
