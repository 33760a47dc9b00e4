package metrics

import (
	"testing"

	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/packet"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c *prometheus.CounterVec, label string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.WithLabelValues(label).Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewCodecMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetrics(reg)
	require.NotNil(t, m)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestObserveEncodeDecode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetrics(reg)

	m.ObserveEncode(fixedheader.PUBLISH, 42)
	require.Equal(t, float64(1), counterValue(t, m.encodeTotal, "PUBLISH"))
	require.Equal(t, float64(42), counterValue(t, m.encodeBytes, "PUBLISH"))

	m.ObserveDecode(fixedheader.CONNACK, 10, 3)
	require.Equal(t, float64(1), counterValue(t, m.decodeTotal, "CONNACK"))
	require.Equal(t, float64(10), counterValue(t, m.decodeBytes, "CONNACK"))
}

func TestObserveDecodeError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetrics(reg)
	m.ObserveDecodeError(packet.ReasonMalformedPacket)
	require.Equal(t, float64(1), counterValue(t, m.decodeErrors, packet.ReasonMalformedPacket.String()))
}

func TestNopMetricsIsSafe(t *testing.T) {
	require.NotPanics(t, func() {
		NopMetrics.ObserveEncode(fixedheader.PUBLISH, 1)
		NopMetrics.ObserveDecode(fixedheader.PUBLISH, 1, 1)
		NopMetrics.ObserveDecodeError(packet.ReasonSuccess)
		var nilMetrics *CodecMetrics
		nilMetrics.ObserveEncode(fixedheader.PUBLISH, 1)
	})
}
