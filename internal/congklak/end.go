package congklak

import "github.com/rocketscienceinc/congklak-backend/internal/entity"

// CheckEnd finishes the game once either row is empty: both rows are swept into their
// owners' stores and the stores are compared. Calling it again on a swept board yields the
// same result without moving any seed.
func CheckEnd(board *entity.Board) (entity.GameResult, bool) {
	if !board.SideEmpty(entity.SidePlayer) && !board.SideEmpty(entity.SideOpponent) {
		return entity.GameResult{}, false
	}

	board.SweepRemaining(entity.SidePlayer)
	board.SweepRemaining(entity.SideOpponent)

	return entity.NewGameResult(board), true
}
