package domain

import "time"

// AccessWindow — сколько пользователь может писать в комнату после первого сообщения.
const AccessWindow = 2 * time.Hour

type AccessRecord struct {
	UserID        string    `db:"user_id"`
	RoomID        string    `db:"room_id"`
	FirstAccessAt time.Time `db:"first_access_at"`
}

type AccessState int

const (
	AccessUnvisited AccessState = iota
	AccessActive
	AccessExpired
)

func (s AccessState) String() string {
	switch s {
	case AccessUnvisited:
		return "unvisited"
	case AccessActive:
		return "active"
	case AccessExpired:
		return "expired"
	default:
		return "unknown"
	}
}

type AccessStatus struct {
	State         AccessState
	CanSend       bool
	IsRestricted  bool
	Remaining     time.Duration
	FirstAccessAt *time.Time
}

// EvaluateAccess вычисляет состояние окна на момент now. Состояние нигде не хранится.
func EvaluateAccess(rec *AccessRecord, now time.Time) AccessStatus {
	if rec == nil {
		return AccessStatus{
			State:     AccessUnvisited,
			CanSend:   true,
			Remaining: AccessWindow,
		}
	}

	first := rec.FirstAccessAt
	elapsed := now.Sub(first)
	if elapsed >= AccessWindow {
		return AccessStatus{
			State:         AccessExpired,
			IsRestricted:  true,
			FirstAccessAt: &first,
		}
	}

	remaining := AccessWindow - elapsed
	if remaining < 0 {
		remaining = 0
	}
	// часы могли уйти назад: окно не может быть длиннее AccessWindow
	if remaining > AccessWindow {
		remaining = AccessWindow
	}

	return AccessStatus{
		State:         AccessActive,
		CanSend:       true,
		Remaining:     remaining,
		FirstAccessAt: &first,
	}
}
