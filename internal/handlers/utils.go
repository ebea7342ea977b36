package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSONResponse записывает JSON-ответ
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeErrorResponse записывает JSON-ответ с ошибкой
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSONResponse(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorResponse - экспортируемая версия writeErrorResponse для роутинга в main
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeErrorResponse(w, statusCode, message)
}

// queryFloat читает необязательный числовой параметр запроса
func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: non-finite value %q", name, raw)
	}
	return v, nil
}

// queryInt читает необязательный целочисленный параметр запроса
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
