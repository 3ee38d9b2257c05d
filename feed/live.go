package feed

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/angas/chartjs-go/maybe"
)

// OnUpdate receives the fresh document of a chart after each sample.
type OnUpdate func(name string, doc []byte)

// LiveCharts keeps one line chart per chart name. Every series of a chart
// is aligned with the chart's labels; a series without a value for a label
// gets a gap there.
type LiveCharts struct {
	logger    *slog.Logger
	mu        sync.Mutex
	maxPoints int
	charts    map[string]*liveChart
	OnUpdate  OnUpdate
}

type liveChart struct {
	labels []string
	order  []string
	series map[string][]chartjs.Number
}

func NewLiveCharts(maxPoints int) *LiveCharts {
	return &LiveCharts{
		logger:    slog.Default().With("module", "feed"),
		maxPoints: max(maxPoints, 1),
		charts:    make(map[string]*liveChart),
	}
}

// Add records s. A label equal to the chart's last label adds to that
// column, any other label opens a new one.
func (l *LiveCharts) Add(s Sample) error {
	l.mu.Lock()
	c, ok := l.charts[s.Chart]
	if !ok {
		c = &liveChart{series: make(map[string][]chartjs.Number)}
		l.charts[s.Chart] = c
	}
	c.add(s, l.maxPoints)
	doc, err := chartjs.Marshal(c.build(s.Chart))
	l.mu.Unlock()

	if err != nil {
		return fmt.Errorf("encoding live chart %q: %w", s.Chart, err)
	}
	if l.OnUpdate != nil {
		l.OnUpdate(s.Chart, doc)
	}
	return nil
}

func (c *liveChart) add(s Sample, maxPoints int) {
	if len(c.labels) == 0 || c.labels[len(c.labels)-1] != s.Label {
		c.labels = append(c.labels, s.Label)
		for name := range c.series {
			c.series[name] = append(c.series[name], chartjs.Gap())
		}
	}

	values, ok := c.series[s.Series]
	if !ok {
		c.order = append(c.order, s.Series)
		values = make([]chartjs.Number, len(c.labels))
	}
	values[len(values)-1] = maybe.Some(s.Value)
	c.series[s.Series] = values

	if drop := len(c.labels) - maxPoints; drop > 0 {
		c.labels = c.labels[drop:]
		for name, v := range c.series {
			c.series[name] = v[drop:]
		}
	}
}

func (c *liveChart) build(name string) *chartjs.LineChart {
	chart := chartjs.NewLineChart()
	chart.Data.Labels = slices.Clone(c.labels)

	colors := chartjs.Palette(len(c.order))
	for i, series := range c.order {
		ds := &chartjs.LineDataset{Data: slices.Clone(c.series[series])}
		ds.Label = series
		ds.Fill = chartjs.FillNone
		ds.BorderColor = colors[i]
		ds.BackgroundColor = colors[i]
		ds.LineTension = maybe.Some(0.0)
		ds.PointRadius = chartjs.Uniform(2.0)
		chart.AddDataset(ds)
	}

	chart.Options.Title = chartjs.Title{Display: maybe.Some(true), Text: []string{name}}
	chart.Options.Animation.Duration = maybe.Some(0.0)
	chart.Options.SpanGaps = maybe.Some(true)
	chart.Options.Scales.AddYAxis(chartjs.CartesianAxis{
		Ticks: chartjs.Ticks{BeginAtZero: maybe.Some(true)},
	})
	return chart
}

// Names returns the live chart names, sorted.
func (l *LiveCharts) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, 0, len(l.charts))
	for name := range l.charts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Chart returns a copy of the named chart's current state.
func (l *LiveCharts) Chart(name string) (*chartjs.LineChart, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.charts[name]
	if !ok {
		return nil, false
	}
	return c.build(name), true
}

// Document returns the encoded document of a live chart.
func (l *LiveCharts) Document(name string) ([]byte, bool, error) {
	chart, ok := l.Chart(name)
	if !ok {
		return nil, false, nil
	}
	doc, err := chartjs.Marshal(chart)
	return doc, true, err
}

// Documents encodes every live chart; charts that fail to encode are
// logged and skipped.
func (l *LiveCharts) Documents() map[string][]byte {
	docs := make(map[string][]byte)
	for _, name := range l.Names() {
		doc, ok, err := l.Document(name)
		if err != nil {
			l.logger.Warn("live chart not encodable", slog.String("chart", name), slog.Any("error", err))
			continue
		}
		if ok {
			docs[name] = doc
		}
	}
	return docs
}
