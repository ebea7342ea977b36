package models

const (
	GeoapifyPlacesURL  string = "https://api.geoapify.com/v2/places"
	YelpBusinessSearch string = "https://api.yelp.com/v3/businesses/search"
)

// GeoapifyResponse - ответ Geoapify Places API
type GeoapifyResponse struct {
	Features []struct {
		Properties struct {
			PlaceID      string   `json:"place_id"`
			Name         string   `json:"name"`
			Lat          *float64 `json:"lat"`
			Lon          *float64 `json:"lon"`
			AddressLine1 string   `json:"address_line1"`
			AddressLine2 string   `json:"address_line2"`
			Categories   []string `json:"categories"`
			Website      string   `json:"website"`
		} `json:"properties"`
	} `json:"features"`
}

// YelpSearchResponse - ответ Yelp Fusion businesses/search
type YelpSearchResponse struct {
	Businesses []YelpBusiness `json:"businesses"`
}

type YelpBusiness struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	Price        string  `json:"price"`
	URL          string  `json:"url"`
	DisplayPhone string  `json:"display_phone"`
	IsClosed     bool    `json:"is_closed"`
	Distance     float64 `json:"distance"`
	Location     struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
	Categories []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
}
