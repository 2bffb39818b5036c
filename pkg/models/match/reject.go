package match

import "errors"

// RejectReason classifies why a move was refused. The engine only tags the
// rejection; turning a tag into user-facing text is the transport's job.
type RejectReason int

const (
	GeometryInvalid RejectReason = iota
	OutOfTurn
	EdgeAlreadyDrawn
	GameAlreadyOver
)

func (r RejectReason) String() string {
	switch r {
	case GeometryInvalid:
		return "geometry_invalid"
	case OutOfTurn:
		return "out_of_turn"
	case EdgeAlreadyDrawn:
		return "edge_already_drawn"
	case GameAlreadyOver:
		return "game_already_over"
	}
	return "unknown"
}

// Rejection is the value returned when a move is refused. The caller's state
// is left exactly as it was.
type Rejection struct {
	Reason RejectReason
}

func (r *Rejection) Error() string {
	return "move rejected: " + r.Reason.String()
}

func reject(reason RejectReason) *Rejection {
	return &Rejection{Reason: reason}
}

// AsRejection unwraps a rejection from an error returned by Apply.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
