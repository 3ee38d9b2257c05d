package feed

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		payload string
		want    Sample
		wantErr bool
	}{
		{
			name:    "full payload",
			topic:   "charts/x",
			payload: `{"chart":"cpu","series":"host1","label":"12:00","value":1.5}`,
			want:    Sample{Chart: "cpu", Series: "host1", Label: "12:00", Value: 1.5},
		},
		{
			name:    "chart from topic",
			topic:   "charts/memory",
			payload: `{"series":"host2","label":"12:01","value":0}`,
			want:    Sample{Chart: "memory", Series: "host2", Label: "12:01", Value: 0},
		},
		{
			name:    "series defaults to chart",
			topic:   "charts/temp",
			payload: `{"label":"mon","value":21}`,
			want:    Sample{Chart: "temp", Series: "temp", Label: "mon", Value: 21},
		},
		{name: "no label", topic: "charts/cpu", payload: `{"value":1}`, wantErr: true},
		{name: "not json", topic: "charts/cpu", payload: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSample(tt.topic, []byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSample)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type document struct {
	Data struct {
		Labels   []string `json:"labels"`
		Datasets []struct {
			Label string     `json:"label"`
			Data  []*float64 `json:"data"`
		} `json:"datasets"`
	} `json:"data"`
}

func decode(t *testing.T, doc []byte) document {
	t.Helper()
	var d document
	require.NoError(t, json.Unmarshal(doc, &d))
	return d
}

func TestLiveChartsAlignment(t *testing.T) {
	live := NewLiveCharts(10)
	var updates []string
	live.OnUpdate = func(name string, doc []byte) { updates = append(updates, name) }

	require.NoError(t, live.Add(Sample{Chart: "cpu", Series: "a", Label: "t1", Value: 1}))
	require.NoError(t, live.Add(Sample{Chart: "cpu", Series: "b", Label: "t1", Value: 2}))
	require.NoError(t, live.Add(Sample{Chart: "cpu", Series: "a", Label: "t2", Value: 3}))
	require.NoError(t, live.Add(Sample{Chart: "disk", Series: "a", Label: "t1", Value: 9}))

	assert.Equal(t, []string{"cpu", "cpu", "cpu", "disk"}, updates)
	assert.Equal(t, []string{"cpu", "disk"}, live.Names())

	doc, ok, err := live.Document("cpu")
	require.NoError(t, err)
	require.True(t, ok)

	d := decode(t, doc)
	assert.Equal(t, []string{"t1", "t2"}, d.Data.Labels)
	require.Len(t, d.Data.Datasets, 2)
	assert.Equal(t, "a", d.Data.Datasets[0].Label)
	assert.Equal(t, 3.0, *d.Data.Datasets[0].Data[1])
	assert.Equal(t, 2.0, *d.Data.Datasets[1].Data[0])
	assert.Nil(t, d.Data.Datasets[1].Data[1], "series b has a gap at t2")

	chart, ok := live.Chart("cpu")
	require.True(t, ok)
	assert.True(t, chart.IsDrawable())
	assert.Empty(t, chart.Diagnostics())

	_, ok, err = live.Document("nope")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLiveChartsTrim(t *testing.T) {
	live := NewLiveCharts(3)
	for i, label := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, live.Add(Sample{Chart: "c", Series: "s", Label: label, Value: float64(i)}))
	}

	docs := live.Documents()
	require.Contains(t, docs, "c")
	d := decode(t, docs["c"])
	assert.Equal(t, []string{"c", "d", "e"}, d.Data.Labels)
	assert.Len(t, d.Data.Datasets[0].Data, 3)
	assert.Equal(t, 2.0, *d.Data.Datasets[0].Data[0])
}

func TestHandleMessage(t *testing.T) {
	f := New("localhost", 1883, "", "", "test", "charts")
	var got []Sample
	f.OnSample = func(s Sample) { got = append(got, s) }

	f.handleMessage("charts/cpu", []byte(`{"label":"t","value":1}`))
	f.handleMessage("charts/cpu", []byte(`garbage`))

	require.Len(t, got, 1)
	assert.Equal(t, "cpu", got[0].Chart)
	assert.Equal(t, "charts/#", f.subscription())
}

func TestMqttLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	newMqttLogger(logger, slog.LevelWarn).Printf("lost %d packets", 3)
	newMqttLogger(logger, slog.LevelError).Println("boom")

	out := buf.String()
	assert.True(t, strings.Contains(out, `level=WARN msg="lost 3 packets"`), out)
	assert.True(t, strings.Contains(out, "level=ERROR msg=boom"), out)
}
