package geo

import "math"

const (
	// DefaultProviderMaxMeters - максимальный радиус одного запроса к поставщику мест
	DefaultProviderMaxMeters = 5000.0
	// DefaultGridStepDegrees - шаг сетки дополнительных точек поиска
	DefaultGridStepDegrees = 0.05
)

// CoveragePoint - центр одного запроса к поставщику мест
type CoveragePoint struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
}

// CoverageOptions - ограничения поставщика мест
type CoverageOptions struct {
	ProviderMaxMeters float64
	GridStepDegrees   float64
}

func (o CoverageOptions) withDefaults() CoverageOptions {
	if o.ProviderMaxMeters <= 0 {
		o.ProviderMaxMeters = DefaultProviderMaxMeters
	}
	if o.GridStepDegrees <= 0 {
		o.GridStepDegrees = DefaultGridStepDegrees
	}
	return o
}

/*
PlanCoverage разбивает радиус поиска на запросы, каждый из которых не превышает радиус поставщика.
Если радиус помещается в один запрос, возвращается только origin. Иначе вокруг origin строится
квадратная сетка с фиксированным шагом в градусах. Шаг не уменьшается с широтой - это
известное приближение.
*/
func PlanCoverage(origin Coordinate, radiusMiles float64, opts CoverageOptions) []CoveragePoint {
	opts = opts.withDefaults()
	radiusMeters := radiusMiles * MetersPerMile
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil
	}

	if radiusMeters <= opts.ProviderMaxMeters {
		return []CoveragePoint{{Center: origin, RadiusMeters: opts.ProviderMaxMeters}}
	}

	multiplier := int(math.Ceil(radiusMeters / opts.ProviderMaxMeters))
	side := 2*multiplier + 1

	points := make([]CoveragePoint, 0, side*side)
	points = append(points, CoveragePoint{Center: origin, RadiusMeters: opts.ProviderMaxMeters})

	for i := -multiplier; i <= multiplier; i++ {
		for j := -multiplier; j <= multiplier; j++ {
			if i == 0 && j == 0 {
				continue
			}
			lat := origin.Lat + float64(i)*opts.GridStepDegrees
			if lat < -90 || lat > 90 {
				continue
			}
			points = append(points, CoveragePoint{
				Center: Coordinate{
					Lat: lat,
					Lng: normalizeLng(origin.Lng + float64(j)*opts.GridStepDegrees),
				},
				RadiusMeters: opts.ProviderMaxMeters,
			})
		}
	}

	return points
}

// PlanRouteCoverage расставляет точки поиска вдоль маршрута с шагом в два радиуса поставщика.
// Первая и последняя точки маршрута включаются всегда.
func PlanRouteCoverage(line Polyline, opts CoverageOptions) []CoveragePoint {
	opts = opts.withDefaults()
	if len(line) == 0 {
		return nil
	}

	spacing := 2 * opts.ProviderMaxMeters / MetersPerMile
	points := []CoveragePoint{{Center: line[0], RadiusMeters: opts.ProviderMaxMeters}}

	carried := 0.0
	for i := 0; i < len(line)-1; i++ {
		start, end := line[i], line[i+1]
		segment := Haversine(start, end)
		if segment == 0 {
			continue
		}

		offset := spacing - carried
		for offset <= segment {
			t := offset / segment
			points = append(points, CoveragePoint{
				Center: Coordinate{
					Lat: start.Lat + t*(end.Lat-start.Lat),
					Lng: start.Lng + t*(end.Lng-start.Lng),
				},
				RadiusMeters: opts.ProviderMaxMeters,
			})
			offset += spacing
		}
		carried = segment - (offset - spacing)
	}

	last := line[len(line)-1]
	if points[len(points)-1].Center != last {
		points = append(points, CoveragePoint{Center: last, RadiusMeters: opts.ProviderMaxMeters})
	}

	return points
}
