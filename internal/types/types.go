package types

// EdgeArg is a raw candidate segment as sent by a client. It is normalized
// and validated by the engine before anything trusts it.
type EdgeArg struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

type CreateRoomRequest struct {
	GridSize   int    `json:"gridSize,default=6"`
	Players    int    `json:"players,default=2"`
	Difficulty string `json:"difficulty,optional"` // empty means no bot seat
}

type CreateRoomResponse struct {
	RoomID      string    `json:"roomId"`
	PlayerIndex int       `json:"playerIndex"`
	State       StateView `json:"state"`
}

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
}

type JoinRoomResponse struct {
	PlayerIndex int       `json:"playerIndex"`
	State       StateView `json:"state"`
}

type MoveRequest struct {
	RoomID string  `json:"roomId"`
	Player int     `json:"player"`
	Edge   EdgeArg `json:"edge"`
}

type MoveResponse struct {
	State StateView `json:"state"`
}

type StateRequest struct {
	RoomID string `form:"roomId"`
}

type AttachRequest struct {
	RoomID string `form:"roomId"`
}

type MoveView struct {
	X1     int `json:"x1"`
	Y1     int `json:"y1"`
	X2     int `json:"x2"`
	Y2     int `json:"y2"`
	Player int `json:"player"`
	Gained int `json:"gained"`
}

type BoxView struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Owner int `json:"owner"`
}

type StateView struct {
	GridSize      int        `json:"gridSize"`
	Players       int        `json:"players"`
	Scores        []int      `json:"scores"`
	CurrentPlayer int        `json:"currentPlayer"`
	Started       bool       `json:"started"`
	GameOver      bool       `json:"gameOver"`
	Winner        int        `json:"winner"` // -1 while running or on a draw
	Moves         []MoveView `json:"moves"`
	Boxes         []BoxView  `json:"boxes"`
}
