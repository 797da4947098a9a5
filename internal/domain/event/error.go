package event

import "errors"

var (
	ErrUnknownType      = errors.New("unknown event type")
	ErrMalformedPayload = errors.New("malformed event payload")
	ErrInvalidPayload   = errors.New("invalid event payload")
	ErrScoreOutOfBounds = errors.New("score out of bounds")
	ErrInvalidNickname  = errors.New("invalid nickname")
)
