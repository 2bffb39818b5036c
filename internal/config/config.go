package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// Redis backs the per-player move rate limit; leave empty to disable.
	Redis redis.RedisConf `json:",optional"`

	// Mongo backs the finished-game result archive; leave Url empty to
	// disable archiving.
	Mongo struct {
		Url        string `json:",optional"`
		Database   string `json:",default=boxline"`
		Collection string `json:",default=game_results"`
	} `json:",optional"`

	Game struct {
		MinGridSize int `json:",default=3"`
		MaxGridSize int `json:",default=10"`
		MaxPlayers  int `json:",default=4"`
	} `json:",optional"`

	Room struct {
		TTLSeconds           int `json:",default=1800"`
		SweepIntervalSeconds int `json:",default=60"`
	} `json:",optional"`

	MoveLimit struct {
		PeriodSeconds int `json:",default=1"`
		Quota         int `json:",default=5"`
	} `json:",optional"`

	PprofAddr string `json:",optional"`
}
