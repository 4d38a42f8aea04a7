package congklak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

func TestCheckEnd(t *testing.T) {
	t.Run("Both rows have seeds", func(t *testing.T) {
		// Given: a fresh board
		board := entity.NewBoard(entity.DefaultRules())

		// When: checking for the end
		_, ended := CheckEnd(board)

		// Then: the game goes on and nothing moves
		assert.False(t, ended)
		assert.Equal(t, entity.NewBoard(entity.DefaultRules()), board)
	})

	t.Run("Empty row sweeps the other row into its store", func(t *testing.T) {
		// Given: the player's row is empty
		board := entity.NewEmptyBoard(7)
		board.Stores = [2]int{40, 30}
		board.Holes[entity.SideOpponent] = []int{4, 4, 4, 4, 4, 4, 4}

		// When: checking for the end
		result, ended := CheckEnd(board)

		// Then: the opponent collects its row and wins
		require.True(t, ended)
		assert.Equal(t, entity.GameResult{PlayerStore: 40, OpponentStore: 58, Outcome: entity.OutcomeOpponentWin}, result)
		assert.True(t, board.SideEmpty(entity.SideOpponent))
		assert.Equal(t, 98, result.PlayerStore+result.OpponentStore)
	})

	t.Run("Both rows are swept", func(t *testing.T) {
		// Given: the opponent's row is empty, the player still has seeds
		board := entity.NewEmptyBoard(7)
		board.Stores = [2]int{50, 45}
		board.Holes[entity.SidePlayer][2] = 3

		// When: checking for the end
		result, ended := CheckEnd(board)

		// Then: the player's seeds go to the player's store
		require.True(t, ended)
		assert.Equal(t, entity.OutcomePlayerWin, result.Outcome)
		assert.Equal(t, 53, result.PlayerStore)
	})

	t.Run("Equal stores are a draw", func(t *testing.T) {
		board := entity.NewEmptyBoard(7)
		board.Stores = [2]int{49, 49}

		result, ended := CheckEnd(board)

		require.True(t, ended)
		assert.Equal(t, entity.OutcomeDraw, result.Outcome)
	})

	t.Run("Second check changes nothing", func(t *testing.T) {
		// Given: a board that has just been swept
		board := entity.NewEmptyBoard(7)
		board.Stores = [2]int{10, 60}
		board.Holes[entity.SideOpponent][6] = 28
		first, ended := CheckEnd(board)
		require.True(t, ended)
		swept := board.Clone()

		// When: checking again
		second, ended := CheckEnd(board)

		// Then: the same result comes back and the board is untouched
		require.True(t, ended)
		assert.Equal(t, first, second)
		assert.Equal(t, swept, board)
	})
}
