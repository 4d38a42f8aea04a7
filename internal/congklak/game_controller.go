package congklak

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
	"github.com/rocketscienceinc/congklak-backend/internal/bot"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

// MoveRecord is one resolved move as the presentation layer replays it.
type MoveRecord struct {
	Side      entity.Side        `json:"side"`
	Hole      int                `json:"hole"`
	Trace     []entity.StepEvent `json:"trace"`
	ExtraTurn bool               `json:"extra_turn"`
	Streak    int                `json:"streak"`
	Reason    Reason             `json:"reason"`
	Passed    bool               `json:"passed,omitempty"`
}

// Report is everything a single submission caused, in order.
type Report struct {
	Moves  []MoveRecord       `json:"moves"`
	Turn   entity.TurnState   `json:"turn"`
	Result *entity.GameResult `json:"result,omitempty"`
}

type Option func(*Controller)

// WithStrategy replaces the opponent's move picker.
func WithStrategy(strategy bot.Strategy) Option {
	return func(that *Controller) {
		that.strategy = strategy
	}
}

// WithoutBot leaves the opponent side to a second human.
func WithoutBot() Option {
	return func(that *Controller) {
		that.strategy = nil
	}
}

// Controller drives the turns of one game.
type Controller struct {
	logger   *slog.Logger
	game     *entity.Game
	engine   *Engine
	strategy bot.Strategy
	inFlight atomic.Bool
}

func NewController(logger *slog.Logger, game *entity.Game, opts ...Option) (*Controller, error) {
	engine, err := NewEngine(game.Rules)
	if err != nil {
		return nil, err
	}

	if game.Board == nil {
		return nil, fmt.Errorf("%w: game %s has no board", apperror.ErrInvalidConfiguration, game.ID)
	}

	for _, side := range []entity.Side{entity.SidePlayer, entity.SideOpponent} {
		if len(game.Board.Holes[side]) != game.Rules.HolesPerSide {
			return nil, fmt.Errorf("%w: %s row has %d holes, rules want %d",
				apperror.ErrInvalidConfiguration, side, len(game.Board.Holes[side]), game.Rules.HolesPerSide)
		}
	}

	that := &Controller{
		logger:   logger.With("component", "congklak", "gameID", game.ID),
		game:     game,
		engine:   engine,
		strategy: bot.FirstNonEmpty{},
	}

	for _, opt := range opts {
		opt(that)
	}

	return that, nil
}

func (that *Controller) State() entity.TurnState {
	return that.game.Turn
}

func (that *Controller) Board() *entity.Board {
	return that.game.Board.Clone()
}

func (that *Controller) Result() (entity.GameResult, bool) {
	if that.game.Result == nil {
		return entity.GameResult{}, false
	}
	return *that.game.Result, true
}

// SubmitMove plays the side's hole and, when the opponent is automated, every opponent move
// that follows until the turn is back with the human or the game is over.
func (that *Controller) SubmitMove(side entity.Side, hole int) (Report, error) {
	if !that.inFlight.CompareAndSwap(false, true) {
		return Report{}, apperror.ErrConcurrentMove
	}
	defer that.inFlight.Store(false)

	if err := that.game.ConfirmOngoingState(); err != nil {
		return Report{}, err
	}

	if err := that.validateMove(side, hole); err != nil {
		return Report{}, fmt.Errorf("invalid move: %w", err)
	}

	var report Report

	record, err := that.play(side, hole)
	if err != nil {
		return report, err
	}
	report.Moves = append(report.Moves, record)

	for that.strategy != nil && that.game.IsOngoing() && that.game.Turn.Active == entity.SideOpponent {
		choice := that.strategy.ChooseMove(that.game.Board.HolesOf(entity.SideOpponent))
		if err = that.validateMove(entity.SideOpponent, choice); err != nil {
			return that.finishReport(report), fmt.Errorf("opponent strategy chose hole %d: %w", choice, err)
		}

		record, err = that.play(entity.SideOpponent, choice)
		if err != nil {
			return that.finishReport(report), err
		}
		report.Moves = append(report.Moves, record)
	}

	return that.finishReport(report), nil
}

// validateMove - checks if the move is legal for the current turn.
func (that *Controller) validateMove(side entity.Side, hole int) error {
	if side != that.game.Turn.Active {
		return apperror.ErrNotYourTurn
	}

	if hole < 0 || hole >= that.game.Rules.HolesPerSide {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidHole, hole)
	}

	if that.game.Board.Holes[side][hole] == 0 {
		return fmt.Errorf("%w: %d", apperror.ErrEmptyHole, hole)
	}

	return nil
}

func (that *Controller) play(side entity.Side, hole int) (MoveRecord, error) {
	turn := &that.game.Turn

	out, err := that.engine.ResolveMove(that.game.Board, side, hole, turn.Streak)
	if err != nil {
		return MoveRecord{}, fmt.Errorf("failed to resolve move: %w", err)
	}

	record := MoveRecord{
		Side:      side,
		Hole:      hole,
		Trace:     out.Trace,
		ExtraTurn: out.ExtraTurn,
		Streak:    out.Streak,
		Reason:    out.Reason,
	}

	that.logger.Debug("move resolved",
		"side", side, "hole", hole, "reason", out.Reason, "extraTurn", out.ExtraTurn, "streak", out.Streak)

	turn.Streak = out.Streak

	if result, ended := CheckEnd(that.game.Board); ended {
		that.game.Finish(result)
		that.logger.Info("game over",
			"outcome", result.Outcome, "playerStore", result.PlayerStore, "opponentStore", result.OpponentStore)
		return record, nil
	}

	record.Passed = that.advanceTurn(side, out.ExtraTurn)

	return record, nil
}

// advanceTurn hands the turn on after a move that did not end the game and reports whether
// the next side had to pass.
func (that *Controller) advanceTurn(side entity.Side, extraTurn bool) bool {
	turn := &that.game.Turn
	passed := false

	if !extraTurn {
		turn.Active = side.Other()
		turn.Streak = 0
	}

	// CheckEnd ends the game on any empty row first, so play never gets here with one.
	if that.game.Board.SideEmpty(turn.Active) {
		that.logger.Debug("no legal move, passing turn", "side", turn.Active)
		turn.Active = turn.Active.Other()
		turn.Streak = 0
		passed = true
	}

	turn.Phase = phaseOf(turn.Active)

	return passed
}

func (that *Controller) finishReport(report Report) Report {
	report.Turn = that.game.Turn
	if that.game.Result != nil {
		result := *that.game.Result
		report.Result = &result
	}
	return report
}

func phaseOf(side entity.Side) entity.Phase {
	if side == entity.SideOpponent {
		return entity.PhaseOpponentTurn
	}
	return entity.PhasePlayerTurn
}
