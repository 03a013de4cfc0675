package metrics_test

import (
	"testing"

	"printshop/internal/pkg/metrics"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestCounters(t *testing.T) {
	counter := metrics.OperationErrorsTotal.WithLabelValues("update_order")
	before := counterValue(t, counter)

	counter.Inc()

	assert.InDelta(t, before+1, counterValue(t, counter), 0.001)
}
