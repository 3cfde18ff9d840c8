package handlers

import (
	"errors"
	"io"
	"net/http"

	"elevix/internal/service"
)

const maxGeoPayloadBytes = 16 * 1024

// GeoHandler receives visitor geolocation payloads from the frontend
type GeoHandler struct {
	geoLog *service.GeoLogService
}

// NewGeoHandler creates a new geolocation handler
func NewGeoHandler(geoLog *service.GeoLogService) *GeoHandler {
	return &GeoHandler{geoLog: geoLog}
}

// SaveGeoData appends one geolocation payload to the log
func (h *GeoHandler) SaveGeoData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxGeoPayloadBytes))
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
		return
	}

	if err := h.geoLog.Append(body); err != nil {
		if errors.Is(err, service.ErrInvalidGeoPayload) {
			respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to write geo log", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
