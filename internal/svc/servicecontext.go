package svc

import (
	"context"
	"time"

	"boxline/internal/config"
	"boxline/internal/room"
	"boxline/pkg/models/record"
	"boxline/pkg/pusher"

	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config config.Config
	Rooms  *room.Store

	RedisClient *redis.Redis
	MoveLimiter *limit.PeriodLimit // nil when Redis is not configured

	resultPusher *pusher.Pusher[*record.GameResult]
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config: c,
		Rooms:  room.NewStore(time.Duration(c.Room.TTLSeconds) * time.Second),
	}
	svcCtx.Rooms.StartSweeper(time.Duration(c.Room.SweepIntervalSeconds) * time.Second)

	if c.Redis.Host != "" {
		svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
		svcCtx.MoveLimiter = limit.NewPeriodLimit(
			c.MoveLimit.PeriodSeconds, c.MoveLimit.Quota, svcCtx.RedisClient, "move-limit")
	}

	if c.Mongo.Url != "" {
		model := record.NewGameResultModel(c.Mongo.Url, c.Mongo.Database, c.Mongo.Collection)
		svcCtx.resultPusher = pusher.NewPusher(
			pusher.WithInterval[*record.GameResult](time.Second),
			pusher.WithFlushFunc(func(results ...*record.GameResult) error {
				for _, result := range results {
					if err := model.Insert(context.Background(), result); err != nil {
						return err
					}
				}
				return nil
			}),
		)
		svcCtx.resultPusher.Start()
	}

	return svcCtx
}

// ArchiveResult queues a finished game for the archive; a no-op without Mongo.
func (s *ServiceContext) ArchiveResult(result *record.GameResult) {
	if s.resultPusher != nil {
		s.resultPusher.Add(result)
	}
}

func (s *ServiceContext) Shutdown() {
	s.Rooms.StopSweeper()
	if s.resultPusher != nil {
		s.resultPusher.Stop()
	}
}
