package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpifan/rpifan/internal/api"
	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/endpoints"
	"github.com/rpifan/rpifan/internal/fans"
	"github.com/rpifan/rpifan/internal/mqtt"
	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/rpifan/rpifan/internal/statistics"
	"github.com/rpifan/rpifan/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// CreateController builds the control loop for the given configuration,
// nothing is acquired until the controller is started
func CreateController(config configuration.Configuration) (*controller.Controller, error) {
	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		return nil, err
	}
	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		return nil, err
	}
	state, err := controller.NewState(config.Threshold * 10)
	if err != nil {
		return nil, err
	}
	return controller.NewController(state, sensor, fan, config.ControllerTickRate, config.HistorySize), nil
}

func RunDaemon() error {
	config := configuration.CurrentConfig

	if os.Geteuid() != 0 {
		ui.Warning("rpifan is not running as root, access to the fan and sensor may be denied")
	}

	c, err := CreateController(config)
	if err != nil {
		return err
	}
	tree := endpoints.NewDefaultTree(config.Api.MountPoint, c.State(), c.Sensor())

	var registerer prometheus.Registerer
	if config.Statistics.Enabled {
		registerer = prometheus.DefaultRegisterer
		err = statistics.Register(registerer,
			statistics.NewControllerCollector(c),
			statistics.NewFanCollector(c),
			statistics.NewSensorCollector(c),
		)
		if err != nil {
			return err
		}
	}

	var mirror *endpoints.Mirror
	if config.Mirror.Enabled {
		mirror = endpoints.NewMirror(config.Mirror.Directory, tree)
		c.AddListener(mirror)
	}

	var notifier *mqtt.Notifier
	if config.Mqtt.Enabled {
		publisher, err := mqtt.NewRealPublisher(config.Mqtt)
		if err != nil {
			ui.Warning("MQTT disabled, unable to connect to %s: %v", config.Mqtt.Broker, err)
		} else {
			notifier = mqtt.NewNotifier(publisher, c.Fan().GetId())
			c.AddListener(notifier)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		port := config.Statistics.Port
		if port <= 0 || port >= 65535 {
			port = 9000
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

		g.Add(func() error {
			ui.Info("Serving statistics at :%d/metrics", port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
			}
			return nil
		}, func(err error) {
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			if err := server.Shutdown(timeoutCtx); err != nil {
				ui.Warning("Error stopping statistics server: %v", err)
			} else {
				ui.Info("Statistics server stopped.")
			}
		})
	}
	if config.Api.Enabled {
		// === REST API
		rest := api.CreateRestService(tree, c, registerer)
		addr := net.JoinHostPort(config.Api.Host, strconv.Itoa(config.Api.Port))

		g.Add(func() error {
			ui.Info("Serving endpoints at http://%s%s/", addr, tree.MountPoint())
			if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("cannot start api server: %w", err)
			}
			return nil
		}, func(err error) {
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			if err := rest.Shutdown(timeoutCtx); err != nil {
				ui.Warning("Error stopping api server: %v", err)
			}
		})
	}
	if notifier != nil {
		// === MQTT
		g.Add(func() error {
			return notifier.Run(ctx)
		}, func(err error) {
			cancel()
		})
	}
	{
		// === fan controller
		g.Add(func() error {
			err := c.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", c.Fan().GetId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	err = g.Run()

	if mirror != nil {
		if removeErr := mirror.Remove(); removeErr != nil {
			ui.Warning("Unable to remove mirror files: %v", removeErr)
		}
	}

	return err
}
