package www

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func (s *Server) indexHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := s.db.ListCharts(r.Context())
		if err != nil {
			logger.Error("handling index request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		data := struct {
			Live   []string
			Stored []string
		}{
			Live: s.liveNames(),
		}
		for _, row := range stored {
			data.Stored = append(data.Stored, row.Name)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tm.ExecuteToWriter("index.html", data, w); err != nil {
			logger.Error("handling index request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func (s *Server) previewHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		doc, found, err := s.document(r, name)
		if err != nil {
			logger.Error("handling preview request", slog.String("chart", name), slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "chart not found", http.StatusNotFound)
			return
		}

		data := struct {
			Name     string
			Document json.RawMessage
		}{
			Name:     name,
			Document: json.RawMessage(doc), // escaped by html/template in script context
		}

		buf, err := s.tm.Execute("preview.html", data)
		if err != nil {
			logger.Error("handling preview request", slog.String("chart", name), slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.Warn("writing preview failed", slog.Any("error", err))
		}
	}
}
