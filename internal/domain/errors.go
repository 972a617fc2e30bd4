package domain

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidName       = errors.New("room name must be at least 3 characters long")
	ErrInvalidRadius     = errors.New("radius must be 2km, 5km or 10km")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidMessage    = errors.New("invalid message")
	ErrAccessExpired     = errors.New("access period has expired")
	ErrRateLimited       = errors.New("too many messages")
	ErrUnauthenticated   = errors.New("unauthenticated")
)
