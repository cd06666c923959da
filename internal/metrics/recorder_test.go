package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsClicksAndStops(t *testing.T) {
	r := NewRecorder()

	r.AddClicks(3)
	r.AddClicks(2)
	r.Stopped(ReasonMovement)
	r.Stopped(ReasonMovement)
	r.Stopped(ReasonError)

	assert.Equal(t, 5.0, testutil.ToFloat64(r.clicks))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.stops.WithLabelValues(ReasonMovement)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.stops.WithLabelValues(ReasonError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.stops.WithLabelValues(ReasonSignal)))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.AddClicks(7)
	r.Stopped(ReasonSignal)
	r.ObserveDuration(1500 * time.Millisecond)

	path := filepath.Join(t.TempDir(), "autoclick.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "autoclick_clicks_total 7")
	assert.Contains(t, text, `autoclick_stops_total{reason="signal"} 1`)
	assert.Contains(t, text, "autoclick_run_duration_seconds 1.5")
	assert.True(t, strings.HasSuffix(text, "\n"))
}
