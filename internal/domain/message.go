package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const DefaultMaxMessageLength = 4000

type Message struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	SenderID  string    `db:"sender_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// NormalizeBody обрезает пробелы и проверяет длину. maxLen <= 0 — без ограничения.
func NormalizeBody(body string, maxLen int) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", fmt.Errorf("%w: message cannot be empty", ErrInvalidMessage)
	}
	if maxLen > 0 && utf8.RuneCountInString(body) > maxLen {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidMessage, maxLen)
	}
	return body, nil
}
