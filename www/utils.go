package www

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

func intOrDefault(u *url.URL, key string, defaultValue int) int {
	if v := u.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response failed", slog.Any("error", err))
	}
}

// writeDocument writes an already encoded chart document.
func writeDocument(logger *slog.Logger, w http.ResponseWriter, doc []byte) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(doc); err != nil {
		logger.Warn("writing document failed", slog.Any("error", err))
	}
}
