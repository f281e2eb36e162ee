package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/util"
)

const subsystemSensor = "sensor"

// SensorCollector reports the temperatures seen by the control loop,
// it never reads the sensor itself
type SensorCollector struct {
	controller *controller.Controller
	value      *prometheus.Desc
	avg        *prometheus.Desc
	min        *prometheus.Desc
	max        *prometheus.Desc
}

func NewSensorCollector(c *controller.Controller) *SensorCollector {
	return &SensorCollector{
		controller: c,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "celsius"),
			"Last available temperature of the sensor",
			[]string{"id"}, nil,
		),
		avg: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "avg_celsius"),
			"Average temperature over the history window",
			[]string{"id"}, nil,
		),
		min: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "min_celsius"),
			"Lowest temperature in the history window",
			[]string{"id"}, nil,
		),
		max: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "max_celsius"),
			"Highest temperature in the history window",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
	ch <- collector.avg
	ch <- collector.min
	ch <- collector.max
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	history := collector.controller.History()
	if len(history) == 0 {
		return
	}
	sensorId := collector.controller.Sensor().GetId()
	ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, history[len(history)-1], sensorId)
	ch <- prometheus.MustNewConstMetric(collector.avg, prometheus.GaugeValue, util.Avg(history), sensorId)
	ch <- prometheus.MustNewConstMetric(collector.min, prometheus.GaugeValue, util.Min(history), sensorId)
	ch <- prometheus.MustNewConstMetric(collector.max, prometheus.GaugeValue, util.Max(history), sensorId)
}
