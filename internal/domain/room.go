package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MinRoomNameLength = 3

type RadiusClass string

const (
	Radius2Km  RadiusClass = "2km"
	Radius5Km  RadiusClass = "5km"
	Radius10Km RadiusClass = "10km"
)

// MaxRadiusKm — самый большой геофенс; discovery строит bounding box по нему.
const MaxRadiusKm = 10.0

func ParseRadiusClass(s string) (RadiusClass, error) {
	rc := RadiusClass(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := rc.km(); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRadius, s)
	}
	return rc, nil
}

func (r RadiusClass) km() (float64, bool) {
	switch r {
	case Radius2Km:
		return 2, true
	case Radius5Km:
		return 5, true
	case Radius10Km:
		return 10, true
	default:
		return 0, false
	}
}

// Km возвращает радиус в километрах; 0 для неизвестного класса.
func (r RadiusClass) Km() float64 {
	km, _ := r.km()
	return km
}

type Room struct {
	ID        string      `db:"id"`
	Name      string      `db:"name"`
	Owner     string      `db:"owner_id"`
	Center    Coordinate  `db:"-"`
	Radius    RadiusClass `db:"radius"`
	Visitors  []string    `db:"-"`
	CreatedAt time.Time   `db:"created_at"`
}

// NewRoom валидирует вход и собирает комнату. ID назначает вызывающий.
func NewRoom(id, owner, name string, center Coordinate, radius RadiusClass, now time.Time) (*Room, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinRoomNameLength {
		return nil, ErrInvalidName
	}
	if _, ok := radius.km(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRadius, radius)
	}
	if err := center.Validate(); err != nil {
		return nil, err
	}

	return &Room{
		ID:        id,
		Name:      name,
		Owner:     owner,
		Center:    center,
		Radius:    radius,
		Visitors:  []string{},
		CreatedAt: now,
	}, nil
}

// Covers — попадает ли точка в геофенс комнаты. Возвращает и точное расстояние.
func (r *Room) Covers(p Coordinate) (float64, bool) {
	d := DistanceKm(p, r.Center)
	return d, d <= r.Radius.Km()
}

func (r *Room) HasVisitor(userID string) bool {
	for _, v := range r.Visitors {
		if v == userID {
			return true
		}
	}
	return false
}
