package www

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/angas/chartjs-go/store"
)

const maxDocumentSize = 1 << 20

type chartEntry struct {
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Live      bool       `json:"live"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (s *Server) liveNames() []string {
	if s.live == nil {
		return nil
	}
	return s.live.Names()
}

// liveDocument looks the name up among live charts first.
func (s *Server) liveDocument(name string) ([]byte, bool, error) {
	if s.live == nil {
		return nil, false, nil
	}
	return s.live.Document(name)
}

func (s *Server) listChartsHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := s.db.ListCharts(r.Context())
		if err != nil {
			logger.Error("handling chart list request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		entries := make([]chartEntry, 0, len(stored))
		live := s.liveNames()
		for _, name := range live {
			entries = append(entries, chartEntry{Name: name, Type: string(chartjs.TypeLine), Live: true})
		}
		for _, row := range stored {
			if slices.Contains(live, row.Name) {
				continue
			}
			updated := row.UpdatedAt
			entries = append(entries, chartEntry{Name: row.Name, Type: row.Type, UpdatedAt: &updated})
		}
		slices.SortFunc(entries, func(a, b chartEntry) int {
			switch {
			case a.Name < b.Name:
				return -1
			case a.Name > b.Name:
				return 1
			}
			return 0
		})

		writeJSON(logger, w, http.StatusOK, entries)
	}
}

// document resolves a chart name to its current document; found is false
// when neither a live nor a stored chart has that name.
func (s *Server) document(r *http.Request, name string) (doc []byte, found bool, err error) {
	doc, found, err = s.liveDocument(name)
	if err != nil || found {
		return doc, found, err
	}

	row, err := s.db.GetChart(r.Context(), name)
	if errors.Is(err, store.ErrChartNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Document, true, nil
}

func (s *Server) getChartHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		doc, found, err := s.document(r, name)
		if err != nil {
			logger.Error("handling chart request", slog.String("chart", name), slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "chart not found", http.StatusNotFound)
			return
		}
		writeDocument(logger, w, doc)
	}
}

// saveChartHandler stores a document built elsewhere. Only its shape and
// chart type are checked; the rest is passed through to the browser as is.
func (s *Server) saveChartHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
		if err != nil {
			http.Error(w, "unable to read document", http.StatusRequestEntityTooLarge)
			return
		}

		var head struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &head); err != nil {
			http.Error(w, "document is not a JSON object", http.StatusBadRequest)
			return
		}
		chartType, err := chartjs.ParseChartType(head.Type)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !bytes.HasPrefix(head.Data, []byte("{")) {
			http.Error(w, "document has no data object", http.StatusBadRequest)
			return
		}

		row, err := s.db.SaveChart(r.Context(), name, string(chartType), body)
		if err != nil {
			logger.Error("handling chart save request", slog.String("chart", name), slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		logger.Info("chart saved", slog.String("chart", name), slog.String("type", row.Type))

		s.PublishChart(name, row.Document)
		row.Document = nil
		writeJSON(logger, w, http.StatusCreated, row)
	}
}

func (s *Server) deleteChartHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		err := s.db.DeleteChart(r.Context(), name)
		if errors.Is(err, store.ErrChartNotFound) {
			http.Error(w, "chart not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("handling chart delete request", slog.String("chart", name), slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) snapshotsHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		limit := min(intOrDefault(r.URL, "limit", 10), 100)
		snapshots, err := s.db.GetSnapshots(r.Context(), name, limit)
		if err != nil {
			logger.Error("handling snapshots request", slog.String("chart", name), slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if snapshots == nil {
			snapshots = []store.SnapshotRow{}
		}
		writeJSON(logger, w, http.StatusOK, snapshots)
	}
}
