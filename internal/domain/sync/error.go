package sync

import "errors"

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
)
