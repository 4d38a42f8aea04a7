package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
	"github.com/rocketscienceinc/congklak-backend/internal/usecase"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{
		Player: player,
	}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGame(ctx, player.ID)
		if err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
		}

		payloadResp.Game = game
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	game, err := that.gameUseCase.GetOrCreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new game")
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
		Game:   game,
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	if payloadReq.Hole == nil {
		log.Error("Hole is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Hole is required")
	}

	log = log.With("playerID", payloadReq.Player.ID, "hole", *payloadReq.Hole)

	result, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Hole)
	if result == nil {
		log.Warn("turn rejected", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, turnErrorMessage(err))
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
		Game:   result.Game,
		Moves:  result.Report.Moves,
	}

	// the player's move stands even if the opponent's answer failed
	if err != nil {
		log.Error("turn played partially", "error", err)
		payloadResp.Error = turnErrorMessage(err)
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameState")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	game, err := that.gameUseCase.GetGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Warn("failed to get game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "no active game")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Player: payloadReq.Player, Game: game})
}

func turnErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrIllegalMove):
		return err.Error()
	case errors.Is(err, apperror.ErrConcurrentMove):
		return "another move is in progress"
	case errors.Is(err, usecase.ErrNoActiveGame):
		return "no active game"
	default:
		return "failed to make a turn"
	}
}
