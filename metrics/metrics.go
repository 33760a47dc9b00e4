// Package metrics instruments codec encode/decode calls with Prometheus
// collectors. Nothing here touches the default registry: a library
// registers on whatever *prometheus.Registry its caller supplies.
package metrics

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/packet"
	"github.com/prometheus/client_golang/prometheus"
)

// CodecMetrics holds the encode/decode collectors. They change only
// through the Observe methods, which the packet functions do not call
// themselves. The zero value (NopMetrics) is safe to use and records
// nothing.
type CodecMetrics struct {
	encodeTotal    *prometheus.CounterVec
	decodeTotal    *prometheus.CounterVec
	encodeBytes    *prometheus.CounterVec
	decodeBytes    *prometheus.CounterVec
	decodeErrors   *prometheus.CounterVec
	propertyCount  *prometheus.HistogramVec
	registered     bool
}

// NewCodecMetrics creates and registers a CodecMetrics on reg.
func NewCodecMetrics(reg *prometheus.Registry) *CodecMetrics {
	m := &CodecMetrics{
		encodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqttcodec5_encode_total",
			Help: "Number of packets serialized, by packet type.",
		}, []string{"packet_type"}),
		decodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqttcodec5_decode_total",
			Help: "Number of packets deserialized, by packet type.",
		}, []string{"packet_type"}),
		encodeBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqttcodec5_encode_bytes_total",
			Help: "Total bytes written by Serialize, by packet type.",
		}, []string{"packet_type"}),
		decodeBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqttcodec5_decode_bytes_total",
			Help: "Total bytes consumed by Deserialize, by packet type.",
		}, []string{"packet_type"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqttcodec5_decode_errors_total",
			Help: "Decode failures, keyed by the reason code the error maps to.",
		}, []string{"reason_code"}),
		propertyCount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mqttcodec5_properties_per_packet",
			Help:    "Number of properties decoded per packet.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}, []string{"packet_type"}),
		registered: true,
	}
	reg.MustRegister(m.encodeTotal, m.decodeTotal, m.encodeBytes, m.decodeBytes, m.decodeErrors, m.propertyCount)
	return m
}

// ObserveEncode records a successful Serialize call.
func (m *CodecMetrics) ObserveEncode(t fixedheader.PacketType, bytes int) {
	if m == nil || !m.registered {
		return
	}
	m.encodeTotal.WithLabelValues(t.String()).Inc()
	m.encodeBytes.WithLabelValues(t.String()).Add(float64(bytes))
}

// ObserveDecode records a successful Deserialize call, including how
// many properties it carried.
func (m *CodecMetrics) ObserveDecode(t fixedheader.PacketType, bytes, propertyCount int) {
	if m == nil || !m.registered {
		return
	}
	m.decodeTotal.WithLabelValues(t.String()).Inc()
	m.decodeBytes.WithLabelValues(t.String()).Add(float64(bytes))
	m.propertyCount.WithLabelValues(t.String()).Observe(float64(propertyCount))
}

// ObserveDecodeError records a failed decode, keyed by the reason code
// the error maps to.
func (m *CodecMetrics) ObserveDecodeError(rc packet.ReasonCode) {
	if m == nil || !m.registered {
		return
	}
	m.decodeErrors.WithLabelValues(rc.String()).Inc()
}

// NopMetrics is the zero value CodecMetrics; every method above is a
// no-op when registered is false, so callers can pass &CodecMetrics{}
// or a nil pointer interchangeably.
var NopMetrics = &CodecMetrics{}
