package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"poi-finder/internal/config"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
	"poi-finder/internal/services"
)

// SearchHandler - хендлер поиска мест
type SearchHandler struct {
	searchService      services.SearchServiceInterface
	geolocationService services.GeolocationServiceInterface
	defaultRadiusMiles float64
	defaultLimit       int
	maxRadiusMiles     float64
	log                *logger.Logger
}

// searchBody - тело POST /api/search. Координаты указателями, чтобы отличить пропуск от (0,0)
type searchBody struct {
	Origin         *geo.Coordinate   `json:"origin"`
	Category       string            `json:"category"`
	RadiusMiles    float64           `json:"radius_miles"`
	Limit          int               `json:"limit"`
	DistanceOrigin *geo.Coordinate   `json:"distance_origin"`
	Mode           models.SearchMode `json:"mode"`
	Route          geo.Polyline      `json:"route,omitempty"`
}

func (b searchBody) toRequest() (models.SearchRequest, error) {
	if b.Origin == nil {
		return models.SearchRequest{}, fmt.Errorf("%w: origin is required", models.ErrInvalidRequest)
	}
	req := models.SearchRequest{
		Origin:      *b.Origin,
		Category:    b.Category,
		RadiusMiles: b.RadiusMiles,
		Limit:       b.Limit,
		Mode:        b.Mode,
		Route:       b.Route,
	}
	if b.DistanceOrigin != nil {
		req.DistanceOrigin = *b.DistanceOrigin
	} else if b.Mode == models.SearchModeMeetup {
		return models.SearchRequest{}, fmt.Errorf("%w: distance_origin is required", models.ErrInvalidRequest)
	}
	return req, nil
}

// NewSearchHandler создаёт обработчик поиска
func NewSearchHandler(searchService services.SearchServiceInterface, geolocationService services.GeolocationServiceInterface, cfg *config.SearchConfig, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchService:      searchService,
		geolocationService: geolocationService,
		defaultRadiusMiles: cfg.DefaultRadiusMiles,
		defaultLimit:       cfg.DefaultLimit,
		maxRadiusMiles:     cfg.MaxRadiusMiles,
		log:                log,
	}
}

// Search выполняет поиск по запросу в формате JSON
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var body searchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := body.toRequest()
	if err != nil {
		h.writeSearchError(w, err)
		return
	}
	h.applyDefaults(&req)
	if !h.radiusAllowed(req.RadiusMiles) {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid radius")
		return
	}

	result, err := h.searchService.Search(r.Context(), req)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// Meetup ищет места около середины между двумя адресами
func (h *SearchHandler) Meetup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	from, to, err := h.resolveEndpoints(r)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	midpoint := geo.Midpoint(from, to)
	req.Mode = models.SearchModeMeetup
	req.Origin = midpoint
	req.DistanceOrigin = midpoint

	result, err := h.searchService.Search(r.Context(), req)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// Route ищет места вдоль автомобильного маршрута между двумя адресами
func (h *SearchHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	from, to, err := h.resolveEndpoints(r)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	route, err := h.geolocationService.MakeRoute(r.Context(), from, to)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	req.Mode = models.SearchModeRoute
	req.Origin = from
	req.Route = route

	result, err := h.searchService.SearchAlongRoute(r.Context(), req)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// parseQuery разбирает общие параметры category, radius, limit
func (h *SearchHandler) parseQuery(w http.ResponseWriter, r *http.Request) (models.SearchRequest, bool) {
	radius, err := queryFloat(r, "radius", h.defaultRadiusMiles)
	if err != nil || !h.radiusAllowed(radius) {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid radius")
		return models.SearchRequest{}, false
	}
	limit, err := queryInt(r, "limit", h.defaultLimit)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid limit")
		return models.SearchRequest{}, false
	}

	return models.SearchRequest{
		Category:    r.URL.Query().Get("category"),
		RadiusMiles: radius,
		Limit:       limit,
	}, true
}

// resolveEndpoints геокодирует параметры from и to
func (h *SearchHandler) resolveEndpoints(r *http.Request) (geo.Coordinate, geo.Coordinate, error) {
	fromAddress := strings.TrimSpace(r.URL.Query().Get("from"))
	toAddress := strings.TrimSpace(r.URL.Query().Get("to"))
	if fromAddress == "" || toAddress == "" {
		return geo.Coordinate{}, geo.Coordinate{}, fmt.Errorf("%w: from and to are required", models.ErrInvalidRequest)
	}

	from, err := h.geolocationService.GetCoordinates(r.Context(), fromAddress)
	if err != nil {
		return geo.Coordinate{}, geo.Coordinate{}, err
	}
	to, err := h.geolocationService.GetCoordinates(r.Context(), toAddress)
	if err != nil {
		return geo.Coordinate{}, geo.Coordinate{}, err
	}

	return from, to, nil
}

func (h *SearchHandler) applyDefaults(req *models.SearchRequest) {
	if req.RadiusMiles == 0 {
		req.RadiusMiles = h.defaultRadiusMiles
	}
	if req.Limit == 0 {
		req.Limit = h.defaultLimit
	}
}

func (h *SearchHandler) radiusAllowed(radius float64) bool {
	return h.maxRadiusMiles <= 0 || radius <= h.maxRadiusMiles
}

// writeSearchError переводит ошибку поиска в HTTP-статус
func (h *SearchHandler) writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, geo.ErrInvalidCoordinate), errors.Is(err, models.ErrInvalidRequest):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAddressNotFound):
		writeErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrGeolocationFailed):
		h.log.WithError(err).Error("Geolocation failed")
		writeErrorResponse(w, http.StatusBadGateway, "Geolocation service unavailable")
	default:
		h.log.WithError(err).Error("Search failed")
		writeErrorResponse(w, http.StatusInternalServerError, "Search failed")
	}
}
