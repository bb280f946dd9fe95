package game

import "github.com/mapleleafu/cheesechase/models"

func (e *Engine) playerViews(ranked bool) []models.PlayerView {
	var standings map[string]Standing
	if ranked {
		standings = make(map[string]Standing, len(e.world.Players))
		for _, s := range Rank(e.world.Players) {
			standings[s.PlayerID] = s
		}
	}

	views := make([]models.PlayerView, 0, len(e.world.Players))
	for _, p := range e.world.Players {
		v := models.PlayerView{
			ID:    p.ID,
			Label: p.Label,
			Role:  string(p.Role),
			Score: models.ScoreView{
				CapturesAsCat:      p.Score.CapturesAsCat,
				CheeseAsMouse:      p.Score.CheeseAsMouse,
				LastEventTimestamp: p.Score.LastEventTimestamp,
			},
			Position: models.Position{X: p.Position.X, Y: p.Position.Y},
			Radius:   p.Radius,
		}
		if s, ok := standings[p.ID]; ok {
			v.Rank = s.Rank
			v.Medal = string(s.Medal)
		}
		views = append(views, v)
	}
	return views
}

func (e *Engine) obstacleViews() []models.ObstacleView {
	views := make([]models.ObstacleView, 0, len(e.world.Obstacles))
	for _, o := range e.world.Obstacles {
		views = append(views, models.ObstacleView{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	return views
}

func (e *Engine) cheeseViews() []models.CheeseView {
	views := make([]models.CheeseView, 0, len(e.world.Cheese))
	for _, c := range e.world.Cheese {
		views = append(views, models.CheeseView{
			Position: models.Position{X: c.Position.X, Y: c.Position.Y},
			Radius:   c.Radius,
		})
	}
	return views
}

func (e *Engine) broadcastRoster() {
	e.broadcast(models.ServerMessage{
		Type: models.MsgPlayerList,
		Data: models.PlayerListData{
			Players:  e.playerViews(false),
			Count:    len(e.world.Players),
			CanStart: len(e.world.Players) >= MinPlayers,
		},
	})
}

func (e *Engine) broadcastUpdate() {
	e.broadcast(models.ServerMessage{
		Type: models.MsgUpdate,
		Data: models.UpdateData{
			Players:   e.playerViews(true),
			Obstacles: e.obstacleViews(),
			Cheese:    e.cheeseViews(),
			Phase:     string(e.world.Phase),
			Countdown: e.world.Countdown,
		},
	})
}

func (e *Engine) gameOverMessage(w Winner) models.ServerMessage {
	return models.ServerMessage{
		Type: models.MsgGameOver,
		Data: models.GameOverData{
			Players:   e.playerViews(true),
			Obstacles: e.obstacleViews(),
			Cheese:    e.cheeseViews(),
			Phase:     string(e.world.Phase),
			Winner:    string(w),
		},
	}
}

// broadcast hands msg to every connected player in join order. A client that
// cannot take it is closed; the rest still get the message.
func (e *Engine) broadcast(msg models.ServerMessage) {
	for _, p := range e.world.Players {
		e.sendTo(p.ID, msg)
	}
}

func (e *Engine) sendTo(id string, msg models.ServerMessage) {
	c, ok := e.clients[id]
	if !ok {
		return
	}
	if err := c.Send(msg); err != nil {
		e.logger.Warn("send failed, closing connection", "player", id, "type", msg.Type, "err", err)
		_ = c.Close()
	}
}
