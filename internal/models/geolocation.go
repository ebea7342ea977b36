package models

const (
	YandexGeocoderURL      string = "https://geocode-maps.yandex.ru/v1/"
	OpenrouteDirectionsURL string = "https://api.openrouteservice.org/v2/directions/driving-car/geojson"
)

type YandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

type OpenrouteRequest struct {
	Coordinates  [][2]float64 `json:"coordinates"`
	Instructions bool         `json:"instructions"`
}

// OpenrouteResponse - ответ OpenrouteService в формате GeoJSON, координаты в порядке [lng, lat]
type OpenrouteResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// GeoCache - закешированный маршрут между двумя точками
type GeoCache struct {
	From     [2]float64   `json:"from"`
	To       [2]float64   `json:"to"`
	Polyline [][2]float64 `json:"polyline"`
}
