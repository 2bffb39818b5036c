package record

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameResultModel = (*defaultGameResultModel)(nil)

type GameResultModel interface {
	Insert(ctx context.Context, result *GameResult) error
}

type defaultGameResultModel struct {
	conn *mon.Model
}

// NewGameResultModel returns a mongo-backed model for the result archive.
func NewGameResultModel(url, db, collection string) GameResultModel {
	return &defaultGameResultModel{
		conn: mon.MustNewModel(url, db, collection),
	}
}

func (m *defaultGameResultModel) Insert(ctx context.Context, result *GameResult) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
		result.CreateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, result)
	return err
}
