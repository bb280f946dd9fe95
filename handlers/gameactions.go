package handlers

import (
	"github.com/mapleleafu/cheesechase/game"
	"github.com/mapleleafu/cheesechase/models"
	"github.com/mapleleafu/cheesechase/protocol"
)

// processMessage decodes one inbound frame. Frames that do not parse are
// dropped here and never reach the game loop.
func processMessage(c *Connection, rawMessage []byte) (models.ClientMessage, bool) {
	msg, err := protocol.DecodeClientMessage(c.codec, rawMessage)
	if err != nil {
		c.logger.Debug("dropping malformed message", "label", c.label, "err", err)
		return models.ClientMessage{}, false
	}
	return msg, true
}

// dispatch routes a decoded message to the engine. Runs on the hub goroutine.
func (h *Hub) dispatch(c *Connection, msg models.ClientMessage) {
	switch msg.Type {
	case models.MsgMove:
		dir, ok := game.ParseDirection(msg.Direction)
		if !ok {
			h.logger.Debug("dropping move with unknown direction", "player", c.playerID, "direction", msg.Direction)
			return
		}
		result := h.engine.Move(c.playerID, dir)
		h.logger.Debug("move", "player", c.playerID, "direction", string(dir), "result", result.String())
	case models.MsgStartGame:
		if err := h.engine.StartMatch(); err != nil {
			h.logger.Debug("start request ignored", "player", c.playerID, "err", err)
		}
	default:
		h.logger.Debug("unhandled message type", "player", c.playerID, "type", msg.Type)
	}
}
