package samples

import (
	"encoding/json"
	"testing"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEveryFamily(t *testing.T) {
	for _, typ := range chartjs.ChartTypes {
		t.Run(string(typ), func(t *testing.T) {
			for _, random := range []bool{false, true} {
				chart, err := Build(typ, Options{RandomColors: random})
				require.NoError(t, err)
				assert.Equal(t, typ, chart.Type())
				assert.True(t, chart.IsDrawable())
				assert.Empty(t, chart.Diagnostics())

				s, err := chart.JSON()
				require.NoError(t, err)

				var doc map[string]any
				require.NoError(t, json.Unmarshal([]byte(s), &doc))
				assert.Equal(t, string(typ), doc["type"])
				assert.Contains(t, doc, "options")
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(chartjs.TypeBar, Options{})
	require.NoError(t, err)
	b, err := Build(chartjs.TypeBar, Options{})
	require.NoError(t, err)

	ja, err := chartjs.Marshal(a)
	require.NoError(t, err)
	jb, err := chartjs.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestBuildUnknownType(t *testing.T) {
	_, err := Build("gantt", Options{})
	assert.ErrorIs(t, err, chartjs.ErrUnknownEnumValue)
}
