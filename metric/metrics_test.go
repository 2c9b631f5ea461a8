package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	m := NewMetrics()
	registry := prometheus.NewRegistry()
	require.NoError(t, m.Register(registry))

	// Registering the same collectors twice fails.
	assert.Error(t, m.Register(registry))
}

func TestRecordValidation(t *testing.T) {
	m := NewMetrics()

	m.RecordValidation("ex:Person", true)
	m.RecordValidation("ex:Person", false)
	m.RecordValidation("ex:Person", false)

	assert.Equal(t, 1.0,
		testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("ex:Person", "conforming")))
	assert.Equal(t, 2.0,
		testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("ex:Person", "violating")))
}

func TestRecordViolation(t *testing.T) {
	m := NewMetrics()

	m.RecordViolation("CARDINALITY_MIN")
	m.RecordViolation("CARDINALITY_MIN")
	m.RecordViolation("DATATYPE_MISMATCH")

	assert.Equal(t, 2.0,
		testutil.ToFloat64(m.ViolationsTotal.WithLabelValues("CARDINALITY_MIN")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(m.ViolationsTotal.WithLabelValues("DATATYPE_MISMATCH")))
}

func TestRecordDuration(t *testing.T) {
	m := NewMetrics()
	registry := prometheus.NewRegistry()
	require.NoError(t, m.Register(registry))

	m.RecordDuration("ex:Person", 5*time.Millisecond)

	count := testutil.CollectAndCount(m.ValidationDuration)
	assert.Equal(t, 1, count)
}

func TestRecordReload(t *testing.T) {
	m := NewMetrics()

	m.RecordReload()
	m.RecordReloadError()
	m.RecordReload()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ManifestReloads))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ManifestErrors))
}
