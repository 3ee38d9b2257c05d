package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/chartjs-go/logging"
)

type logEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Attrs     string    `json:"attrs,omitempty"`
}

// logHandler pages through the log kept in the store, newest first.
// ?level= sets the minimum level, DEBUG when absent.
func (s *Server) logHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minLevel := slog.LevelDebug
		if v := r.URL.Query().Get("level"); v != "" {
			l, err := logging.ParseLevel(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			minLevel = l
		}
		page := intOrDefault(r.URL, "page", 1)
		pageSize := min(intOrDefault(r.URL, "pageSize", 25), 500)

		rows, err := s.db.GetLogEntries(r.Context(), minLevel, page, pageSize)
		if err != nil {
			logger.Error("handling log request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		entries := make([]logEntry, 0, len(rows))
		for _, e := range rows {
			entries = append(entries, logEntry{
				Timestamp: e.Timestamp,
				Level:     slog.Level(e.Level).String(),
				Message:   e.Message,
				Attrs:     e.Attrs,
			})
		}
		writeJSON(logger, w, http.StatusOK, entries)
	}
}
