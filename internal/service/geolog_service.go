package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrInvalidGeoPayload is returned for unparseable or empty payloads
var ErrInvalidGeoPayload = errors.New("invalid geolocation payload")

// GeoLogService appends visitor geolocation payloads to a newline-delimited
// JSON file. Writes are serialized so concurrent requests cannot interleave
// lines.
type GeoLogService struct {
	mu   sync.Mutex
	path string
}

// NewGeoLogService creates a geolocation log writing to path
func NewGeoLogService(path string) *GeoLogService {
	return &GeoLogService{path: path}
}

// Append validates and appends one payload as a single JSON line. Any JSON
// value is accepted as long as it carries data: null, empty objects, arrays
// and strings are rejected along with unparseable bodies.
func (s *GeoLogService) Append(payload []byte) error {
	var entry interface{}
	if err := json.Unmarshal(payload, &entry); err != nil {
		return ErrInvalidGeoPayload
	}
	if emptyGeoEntry(entry) {
		return ErrInvalidGeoPayload
	}

	// Re-encode so the stored line is compact and trusted JSON
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode geo entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open geo log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write geo log: %w", err)
	}
	return nil
}

func emptyGeoEntry(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]interface{}:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	}
	return false
}
