package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// getMetricValue retrieves the current float64 value of a Prometheus GaugeVec metric
// for the given set of labels. Returns an error if the metric cannot be parsed.
func getMetricValue(metric *prometheus.GaugeVec, labels map[string]string) (float64, error) {
	c := make(chan prometheus.Metric, 1)
	metric.With(labels).Collect(c)

	m := <-c

	var metricValue float64
	pb := &dto.Metric{}
	if err := m.Write(pb); err != nil {
		return 0, err
	}

	if pb.Gauge != nil {
		metricValue = pb.Gauge.GetValue()
	}

	return metricValue, nil
}
