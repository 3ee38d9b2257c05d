package www

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/angas/chartjs-go/samples"
)

// samplesHandler serves the sample document of a chart family, with fresh
// random colors when ?random=true.
func (s *Server) samplesHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chartType, err := chartjs.ParseChartType(r.PathValue("type"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		chart, err := samples.Build(chartType, samples.Options{
			RandomColors: r.URL.Query().Get("random") == "true",
		})
		if errors.Is(err, chartjs.ErrUnknownEnumValue) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("handling sample request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for _, d := range chart.Diagnostics() {
			logger.Warn("sample chart diagnostic", slog.String("type", string(chartType)), slog.String("diagnostic", d.String()))
		}

		doc, err := chartjs.Marshal(chart)
		if err != nil {
			logger.Error("handling sample request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeDocument(logger, w, doc)
	}
}
