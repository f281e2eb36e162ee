package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpifan/rpifan/internal/controller"
)

const fanSubsystem = "fan"

type FanCollector struct {
	controller *controller.Controller
	enabled    *prometheus.Desc
	threshold  *prometheus.Desc
}

func NewFanCollector(c *controller.Controller) *FanCollector {
	return &FanCollector{
		controller: c,
		enabled: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "enabled"),
			"1 if the fan is on, 0 otherwise",
			[]string{"id"}, nil,
		),
		threshold: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "threshold_celsius"),
			"Temperature at which the fan is switched on",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.enabled
	ch <- collector.threshold
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	fanId := collector.controller.Fan().GetId()
	snapshot := collector.controller.State().Snapshot()
	enabled := 0.0
	if snapshot.FanEnabled {
		enabled = 1
	}
	ch <- prometheus.MustNewConstMetric(collector.enabled, prometheus.GaugeValue, enabled, fanId)
	ch <- prometheus.MustNewConstMetric(collector.threshold, prometheus.GaugeValue, float64(snapshot.ThresholdDegrees()), fanId)
}
