package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameResult is the archived outcome of one finished game. Only the final
// standing is stored; per-move history is not persisted.
type GameResult struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	RoomID   string `bson:"roomId" json:"roomId"`
	GridSize int    `bson:"gridSize" json:"gridSize"`
	Scores   []int  `bson:"scores" json:"scores"`
	Winner   int    `bson:"winner" json:"winner"`
	Bot      string `bson:"bot,omitempty" json:"bot,omitempty"`
}
