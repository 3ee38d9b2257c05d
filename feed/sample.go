package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sample is one value for one series of a live chart, e.g.
//
//	{"chart":"cpu","series":"host1","label":"12:00","value":1.5}
//
// Chart may be left out of the payload; it is then taken from the last
// topic level.
type Sample struct {
	Chart  string  `json:"chart"`
	Series string  `json:"series"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}

var ErrInvalidSample = errors.New("invalid sample")

func ParseSample(topic string, payload []byte) (Sample, error) {
	var s Sample
	if err := json.Unmarshal(payload, &s); err != nil {
		return Sample{}, fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}
	if s.Chart == "" {
		if i := strings.LastIndexByte(topic, '/'); i >= 0 {
			s.Chart = topic[i+1:]
		} else {
			s.Chart = topic
		}
	}
	if s.Series == "" {
		s.Series = s.Chart
	}

	switch {
	case s.Chart == "":
		return Sample{}, fmt.Errorf("%w: no chart name", ErrInvalidSample)
	case s.Label == "":
		return Sample{}, fmt.Errorf("%w: no label", ErrInvalidSample)
	case math.IsNaN(s.Value) || math.IsInf(s.Value, 0):
		return Sample{}, fmt.Errorf("%w: value is not finite", ErrInvalidSample)
	}
	return s, nil
}
