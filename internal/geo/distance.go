package geo

import "math"

const (
	// EarthRadiusMiles - радиус Земли для формулы гаверсинусов
	EarthRadiusMiles = 3959.0
	// MetersPerMile - количество метров в миле
	MetersPerMile = 1609.344
)

// Nearest - ближайшая к точке проекция на маршрут
type Nearest struct {
	Distance     float64    // расстояние от точки до проекции, мили
	SegmentIndex int        // индекс начала сегмента
	Point        Coordinate // проекция на сегмент
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Haversine возвращает расстояние по большому кругу между двумя точками в милях
func Haversine(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ProjectOntoSegment возвращает ближайшую к point точку отрезка [start, end].
// Координаты рассматриваются как декартовы, что допустимо на локальном масштабе.
func ProjectOntoSegment(point, start, end Coordinate) Coordinate {
	dx := end.Lng - start.Lng
	dy := end.Lat - start.Lat

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return start
	}

	t := ((point.Lng-start.Lng)*dx + (point.Lat-start.Lat)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	return Coordinate{
		Lat: start.Lat + t*dy,
		Lng: start.Lng + t*dx,
	}
}

// NearestPointOnPolyline ищет ближайшую проекцию точки на сегменты маршрута.
// При равных расстояниях побеждает первый сегмент.
// Для маршрута из одной точки возвращается сама точка, для пустого - SegmentIndex -1.
func NearestPointOnPolyline(point Coordinate, line Polyline) Nearest {
	switch len(line) {
	case 0:
		return Nearest{Distance: math.Inf(1), SegmentIndex: -1}
	case 1:
		return Nearest{Distance: Haversine(point, line[0]), Point: line[0]}
	}

	best := Nearest{Distance: math.Inf(1), SegmentIndex: -1}
	for i := 0; i < len(line)-1; i++ {
		projected := ProjectOntoSegment(point, line[i], line[i+1])
		dist := Haversine(point, projected)
		if dist < best.Distance {
			best = Nearest{Distance: dist, SegmentIndex: i, Point: projected}
		}
	}

	return best
}

// RouteDistance возвращает расстояние вдоль маршрута от его начала до ближайшей к point проекции
func RouteDistance(point Coordinate, line Polyline) float64 {
	nearest := NearestPointOnPolyline(point, line)
	if nearest.SegmentIndex < 0 {
		return 0
	}

	var distance float64
	for i := 0; i < nearest.SegmentIndex; i++ {
		distance += Haversine(line[i], line[i+1])
	}

	return distance + Haversine(line[nearest.SegmentIndex], nearest.Point)
}

// Length возвращает полную длину маршрута в милях
func (p Polyline) Length() float64 {
	var total float64
	for i := 0; i < len(p)-1; i++ {
		total += Haversine(p[i], p[i+1])
	}
	return total
}

// Midpoint возвращает географическую середину между двумя точками
func Midpoint(a, b Coordinate) Coordinate {
	lat1, lng1 := toRadians(a.Lat), toRadians(a.Lng)
	lat2 := toRadians(b.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	bx := math.Cos(lat2) * math.Cos(dLng)
	by := math.Cos(lat2) * math.Sin(dLng)

	lat := math.Atan2(math.Sin(lat1)+math.Sin(lat2), math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by))
	lng := lng1 + math.Atan2(by, math.Cos(lat1)+bx)

	return Coordinate{Lat: toDegrees(lat), Lng: normalizeLng(toDegrees(lng))}
}

func normalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
