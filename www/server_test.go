package www

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/angas/chartjs-go/config"
	"github.com/angas/chartjs-go/feed"
	"github.com/angas/chartjs-go/store"
	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, *feed.LiveCharts) {
	t.Helper()
	db, err := store.New(context.Background(), filepath.Join(t.TempDir(), "charts.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	live := feed.NewLiveCharts(10)
	s, err := NewServer(db, live, config.AppConfigApi{}, "1.2.3")
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, live
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestSamples(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, body := do(t, http.MethodGet, ts.URL+"/samples/doughnut", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, "doughnut", doc["type"])

	resp, _ = do(t, http.MethodGet, ts.URL+"/samples/gantt", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChartCrud(t *testing.T) {
	_, ts, _ := newTestServer(t)
	doc := `{"type":"bar","data":{"labels":["a"],"datasets":[{"data":[1]}]}}`

	resp, body := do(t, http.MethodPost, ts.URL+"/charts/sales", doc)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Contains(t, body, `"name":"sales"`)
	assert.Contains(t, body, `"type":"bar"`)

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/sales", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, doc, body)

	resp, body = do(t, http.MethodGet, ts.URL+"/charts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"name":"sales","type":"bar","live":false,"updatedAt":`+extractUpdatedAt(t, body)+`}]`, body)

	resp, body = do(t, http.MethodGet, ts.URL+"/preview/sales", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>sales</h1>")
	assert.Contains(t, body, `new Chart(document.getElementById("chart"), {"type":"bar"`)

	resp, _ = do(t, http.MethodDelete, ts.URL+"/charts/sales", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, ts.URL+"/charts/sales", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, http.MethodDelete, ts.URL+"/charts/sales", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func extractUpdatedAt(t *testing.T, body string) string {
	t.Helper()
	var entries []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 1)
	return string(entries[0]["updatedAt"])
}

func TestSaveChartRejectsBadDocuments(t *testing.T) {
	_, ts, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"array", `[1,2]`},
		{"unknown type", `{"type":"gantt","data":{}}`},
		{"no data", `{"type":"bar"}`},
		{"null data", `{"type":"bar","data":null}`},
		{"scalar data", `{"type":"bar","data":3}`},
		{"array data", `{"type":"bar","data":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, http.MethodPost, ts.URL+"/charts/x", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLiveChartsTakePrecedence(t *testing.T) {
	_, ts, live := newTestServer(t)
	require.NoError(t, live.Add(feed.Sample{Chart: "cpu", Series: "h1", Label: "t1", Value: 2}))

	resp, body := do(t, http.MethodGet, ts.URL+"/charts/cpu", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"type":"line"`)
	assert.Contains(t, body, `"labels":["t1"]`)

	resp, body = do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `href="/preview/cpu"`)

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/cpu/snapshots", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)
}

func TestWebsocketPush(t *testing.T) {
	s, ts, _ := newTestServer(t)

	conn, _, err := ws.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// the client registers asynchronously, keep publishing until it is seen
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			s.PublishChart("cpu", []byte(`{"type":"line","data":{}}`))
			select {
			case <-done:
				return
			case <-ticker.C:
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"cpu","chart":{"type":"line","data":{}}}`, string(msg))
}

func TestLogAndInfo(t *testing.T) {
	s, ts, _ := newTestServer(t)
	ctx := context.Background()
	for _, e := range []store.LogEntry{
		{Timestamp: time.Now(), Level: int(slog.LevelDebug), Message: "quiet"},
		{Timestamp: time.Now(), Level: int(slog.LevelWarn), Message: "loud", Attrs: "chart=cpu"},
	} {
		require.NoError(t, s.db.SaveLogEntry(ctx, e))
	}

	resp, body := do(t, http.MethodGet, ts.URL+"/log?level=warn", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []logEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "loud", entries[0].Message)
	assert.Equal(t, "WARN", entries[0].Level)

	resp, body = do(t, http.MethodGet, ts.URL+"/log", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	assert.Len(t, entries, 2)

	resp, _ = do(t, http.MethodGet, ts.URL+"/log?level=loud", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, http.MethodGet, ts.URL+"/info", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info sysInfo
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, 0, info.LiveCharts)
}
