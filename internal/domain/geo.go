package domain

import (
	"fmt"
	"math"
)

// EarthRadiusKm — средний радиус Земли, используемый в формуле гаверсинуса.
const EarthRadiusKm = 6371.0

const kmPerDegree = EarthRadiusKm * math.Pi / 180

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return fmt.Errorf("%w: NaN", ErrInvalidCoordinate)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: lat %v", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: lng %v", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// DistanceKm возвращает расстояние по большому кругу между a и b (гаверсинус).
func DistanceKm(a, b Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sLat := math.Sin(dLat / 2)
	sLng := math.Sin(dLng / 2)
	h := sLat*sLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sLng*sLng

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RoundKm округляет до 2 знаков; только для отображения.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// BoundingBox — прямоугольник в градусах, заведомо покрывающий круг заданного радиуса.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat && c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("%.5f:%.5f:%.5f:%.5f", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
}

// BoundingBoxAround строит box вокруг center с запасом в 1%.
// ok=false, если box задевает полюс или антимеридиан: тогда фильтровать по box нельзя.
func BoundingBoxAround(center Coordinate, km float64) (BoundingBox, bool) {
	latDelta := km / kmPerDegree * 1.01
	minLat, maxLat := center.Lat-latDelta, center.Lat+latDelta
	if minLat <= -90 || maxLat >= 90 {
		return BoundingBox{}, false
	}

	widest := math.Max(math.Abs(minLat), math.Abs(maxLat))
	lngDelta := latDelta / math.Cos(radians(widest))
	minLng, maxLng := center.Lng-lngDelta, center.Lng+lngDelta
	if minLng < -180 || maxLng > 180 {
		return BoundingBox{}, false
	}

	return BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}, true
}
