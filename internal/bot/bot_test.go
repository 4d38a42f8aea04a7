package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNonEmpty_ChooseMove(t *testing.T) {
	t.Run("Picks the lowest non-empty hole", func(t *testing.T) {
		// Given: a row whose first two holes are empty
		holes := []int{0, 0, 3, 1, 0, 0, 9}

		// When: choosing a move
		choice := FirstNonEmpty{}.ChooseMove(holes)

		// Then: hole 2 should be chosen
		assert.Equal(t, 2, choice)
	})

	t.Run("Returns -1 for an empty row", func(t *testing.T) {
		assert.Equal(t, -1, FirstNonEmpty{}.ChooseMove(make([]int, 7)))
	})
}

func TestStoreSeeker_ChooseMove(t *testing.T) {
	t.Run("Prefers a hole that ends in the store", func(t *testing.T) {
		// Given: hole 4 holds exactly the three seeds needed to reach the store
		holes := []int{1, 1, 1, 1, 3, 0, 0}

		// When: choosing a move
		choice := StoreSeeker{}.ChooseMove(holes)

		// Then: hole 4 should be chosen
		assert.Equal(t, 4, choice)
	})

	t.Run("Closest to the store wins among several", func(t *testing.T) {
		// Given: hole 0 (7 seeds) and hole 6 (1 seed) both reach the store
		holes := []int{7, 0, 0, 0, 0, 0, 1}

		// When: choosing a move
		choice := StoreSeeker{}.ChooseMove(holes)

		// Then: hole 6 should be chosen
		assert.Equal(t, 6, choice)
	})

	t.Run("Counts full laps around the board", func(t *testing.T) {
		// Given: hole 6 holds one seed plus a full 15-slot lap
		holes := []int{0, 0, 0, 0, 0, 0, 16}

		// Then: hole 6 should be chosen
		assert.Equal(t, 6, StoreSeeker{}.ChooseMove(holes))
	})

	t.Run("Falls back to the first non-empty hole", func(t *testing.T) {
		// Given: no hole reaches the store exactly
		holes := []int{0, 2, 0, 0, 0, 0, 5}

		// Then: hole 1 should be chosen
		assert.Equal(t, 1, StoreSeeker{}.ChooseMove(holes))
	})

	t.Run("Is a pure function of the row", func(t *testing.T) {
		holes := []int{7, 7, 7, 7, 7, 7, 7}
		assert.Equal(t, StoreSeeker{}.ChooseMove(holes), StoreSeeker{}.ChooseMove(holes))
		assert.Equal(t, []int{7, 7, 7, 7, 7, 7, 7}, holes)
	})
}

func TestByName(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		strategy, err := ByName(StoreSeekerName)
		require.NoError(t, err)
		assert.IsType(t, StoreSeeker{}, strategy)

		strategy, err = ByName("")
		require.NoError(t, err)
		assert.IsType(t, FirstNonEmpty{}, strategy)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ByName("minimax")
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}
