package www

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"
)

type sysInfo struct {
	Version    string `json:"version"`
	GoVersion  string `json:"goVersion"`
	Uptime     string `json:"uptime"`
	LiveCharts int    `json:"liveCharts"`
	Clients    int    `json:"clients"`
}

func (s *Server) sysInfoHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(logger, w, http.StatusOK, sysInfo{
			Version:    s.version,
			GoVersion:  runtime.Version(),
			Uptime:     time.Since(s.started).Truncate(time.Second).String(),
			LiveCharts: len(s.liveNames()),
			Clients:    s.hub.ClientCount(),
		})
	}
}
