package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpifan/rpifan/internal/controller"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controller *controller.Controller

	ticks          *prometheus.Desc
	sensorErrors   *prometheus.Desc
	actuatorErrors *prometheus.Desc
	fanSwitches    *prometheus.Desc
}

func NewControllerCollector(c *controller.Controller) *ControllerCollector {
	return &ControllerCollector{
		controller: c,
		ticks: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "ticks_total"),
			"Number of control loop ticks",
			[]string{"id"}, nil,
		),
		sensorErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "sensor_errors_total"),
			"Number of ticks without an available temperature sample",
			[]string{"id"}, nil,
		),
		actuatorErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "actuator_errors_total"),
			"Number of failed attempts to switch the fan",
			[]string{"id"}, nil,
		),
		fanSwitches: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "fan_switches_total"),
			"Number of times the fan was switched on or off",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.ticks
	ch <- collector.sensorErrors
	ch <- collector.actuatorErrors
	ch <- collector.fanSwitches
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	fanId := collector.controller.Fan().GetId()
	stats := collector.controller.Statistics()
	ch <- prometheus.MustNewConstMetric(collector.ticks, prometheus.CounterValue, float64(stats.Ticks), fanId)
	ch <- prometheus.MustNewConstMetric(collector.sensorErrors, prometheus.CounterValue, float64(stats.SensorErrors), fanId)
	ch <- prometheus.MustNewConstMetric(collector.actuatorErrors, prometheus.CounterValue, float64(stats.ActuatorErrors), fanId)
	ch <- prometheus.MustNewConstMetric(collector.fanSwitches, prometheus.CounterValue, float64(stats.FanSwitches), fanId)
}
