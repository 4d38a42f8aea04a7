package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

type Phase string

const (
	PhasePlayerTurn   Phase = "player_turn"
	PhaseOpponentTurn Phase = "opponent_turn"
	PhaseGameOver     Phase = "game_over"
)

type Outcome string

const (
	OutcomePlayerWin   Outcome = "player_win"
	OutcomeOpponentWin Outcome = "opponent_win"
	OutcomeDraw        Outcome = "draw"
)

type StepKind string

const (
	// StepPickup is a scoop of every seed in a hole into the hand.
	StepPickup StepKind = "pickup"
	// StepSow is a single seed dropped from the hand.
	StepSow StepKind = "sow"
)

// StepEvent is one committed board mutation of a move, in the order it happened.
type StepEvent struct {
	Kind           StepKind `json:"kind"`
	From           Position `json:"from"`
	To             Position `json:"to"`
	SeedsAfterDrop int      `json:"seeds_after_drop"`
	Hand           int      `json:"hand"`
}

// TurnState is the turn bookkeeping between moves.
type TurnState struct {
	Active Side  `json:"active"`
	Streak int   `json:"streak"`
	Phase  Phase `json:"phase"`
}

func NewTurnState() TurnState {
	return TurnState{Active: SidePlayer, Phase: PhasePlayerTurn}
}

// GameResult is the final score of a finished game.
type GameResult struct {
	PlayerStore   int     `json:"player_store"`
	OpponentStore int     `json:"opponent_store"`
	Outcome       Outcome `json:"outcome"`
}

func NewGameResult(board *Board) GameResult {
	result := GameResult{
		PlayerStore:   board.Stores[SidePlayer],
		OpponentStore: board.Stores[SideOpponent],
	}

	switch {
	case result.PlayerStore > result.OpponentStore:
		result.Outcome = OutcomePlayerWin
	case result.PlayerStore < result.OpponentStore:
		result.Outcome = OutcomeOpponentWin
	default:
		result.Outcome = OutcomeDraw
	}

	return result
}

func (that GameResult) Winner() (Side, bool) {
	switch that.Outcome {
	case OutcomePlayerWin:
		return SidePlayer, true
	case OutcomeOpponentWin:
		return SideOpponent, true
	default:
		return SidePlayer, false
	}
}

type Game struct {
	ID       string      `json:"id"`
	Rules    Rules       `json:"rules"`
	Board    *Board      `json:"board"`
	Turn     TurnState   `json:"turn"`
	Status   string      `json:"status"`
	Result   *GameResult `json:"result,omitempty"`
	PlayerID string      `json:"player_id,omitempty"`
}

func NewGame(id string, rules Rules) *Game {
	return &Game{
		ID:     id,
		Rules:  rules,
		Board:  NewBoard(rules),
		Turn:   NewTurnState(),
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Status {
	case StatusOngoing:
		return nil
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Finish records the result and closes the game for further moves.
func (that *Game) Finish(result GameResult) {
	that.Result = &result
	that.Status = StatusFinished
	that.Turn.Phase = PhaseGameOver
	that.Turn.Streak = 0
}
