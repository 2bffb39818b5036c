package logic

import "errors"

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrGridSizeOutOfRange = errors.New("grid size out of range")
	ErrPlayersOutOfRange  = errors.New("player count out of range")
	ErrUnknownDifficulty  = errors.New("unknown difficulty")
	ErrRateLimited        = errors.New("too many moves, slow down")
)
