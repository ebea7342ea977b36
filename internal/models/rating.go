package models

// RatingInfo - ответ поставщика рейтингов по одному месту.
// ProviderDistance приходит от поставщика и ядром не используется
type RatingInfo struct {
	ID               string   `json:"id"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	Price            string   `json:"price"`
	Website          string   `json:"website"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	Cuisines         []string `json:"cuisines"`
	IsClosed         bool     `json:"is_closed"`
	ProviderDistance float64  `json:"provider_distance"`
}
