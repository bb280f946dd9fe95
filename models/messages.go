package models

// Client -> server message types.
const (
	MsgMove      = "move"
	MsgStartGame = "startGame"
)

// Server -> client message types.
const (
	MsgID          = "id"
	MsgPlayerList  = "playerList"
	MsgGameStarted = "gameStarted"
	MsgUpdate      = "update"
	MsgGameOver    = "gameOver"
)

// ClientMessage is one inbound frame. Direction is only set for moves.
type ClientMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
}

// ServerMessage is one outbound frame.
type ServerMessage struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Data any    `json:"data,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScoreView struct {
	CapturesAsCat      int   `json:"capturesAsCat"`
	CheeseAsMouse      int   `json:"cheeseAsMouse"`
	LastEventTimestamp int64 `json:"lastEventTimestamp"`
}

type PlayerView struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Role     string    `json:"role"`
	Score    ScoreView `json:"score"`
	Position Position  `json:"position"`
	Radius   float64   `json:"radius"`
	Rank     int       `json:"rank,omitempty"`
	Medal    string    `json:"medal,omitempty"`
}

type ObstacleView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CheeseView struct {
	Position Position `json:"position"`
	Radius   float64  `json:"radius"`
}

type PlayerListData struct {
	Players  []PlayerView `json:"players"`
	Count    int          `json:"count"`
	CanStart bool         `json:"canStart"`
}

type UpdateData struct {
	Players   []PlayerView   `json:"players"`
	Obstacles []ObstacleView `json:"obstacles"`
	Cheese    []CheeseView   `json:"cheese"`
	Phase     string         `json:"phase"`
	Countdown int            `json:"countdown"`
}

type GameOverData struct {
	Players   []PlayerView   `json:"players"`
	Obstacles []ObstacleView `json:"obstacles"`
	Cheese    []CheeseView   `json:"cheese"`
	Phase     string         `json:"phase"`
	Winner    string         `json:"winner"`
}

// LobbyInfo is the HTTP view of the arena.
type LobbyInfo struct {
	Phase     string `json:"phase"`
	Countdown int    `json:"countdown"`
	Players   int    `json:"players"`
	Cats      int    `json:"cats"`
	Mice      int    `json:"mice"`
	CanStart  bool   `json:"canStart"`
	MatchID   string `json:"matchId,omitempty"`
}
