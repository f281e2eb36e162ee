package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpifan/rpifan/internal/util"
	"golang.org/x/exp/slices"
)

const (
	MinThreshold = 20
	MaxThreshold = 90
)

var reservedMountPoints = []string{"/", "/api", "/alive", "/metrics"}

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if config.Threshold < MinThreshold || config.Threshold > MaxThreshold {
		return fmt.Errorf("threshold must be within [%d, %d], got %d", MinThreshold, MaxThreshold, config.Threshold)
	}
	if config.ControllerTickRate <= 0 {
		return errors.New("controllerTickRate must be positive")
	}
	if config.HistorySize <= 0 {
		return errors.New("historySize must be positive")
	}

	err := validateSensor(config)
	if err != nil {
		return err
	}
	err = validateFan(config)
	if err != nil {
		return err
	}
	err = validateApi(config)
	if err != nil {
		return err
	}
	err = validateStatistics(config)
	if err != nil {
		return err
	}
	err = validateMqtt(config)
	if err != nil {
		return err
	}

	if config.Mirror.Enabled && len(config.Mirror.Directory) <= 0 {
		return errors.New("mirror: directory is missing")
	}

	// commands are executed as root, so the config which defines them must not be writable by others
	if usesCommands(config) && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %w", path, err)
		}
	}

	return nil
}

func usesCommands(config *Configuration) bool {
	return config.Sensor.Cmd != nil || config.Fan.Cmd != nil
}

func validateSensor(config *Configuration) error {
	sensorConfig := &config.Sensor

	subConfigs := 0
	if sensorConfig.File != nil {
		subConfigs++
	}
	if sensorConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("sensor %s: only one sensor type can be used", sensorConfig.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("sensor %s: sub-configuration for sensor is missing, use one of: file | cmd", sensorConfig.ID)
	}

	if sensorConfig.File != nil {
		if len(strings.TrimSpace(sensorConfig.File.Path)) <= 0 {
			return fmt.Errorf("sensor %s: file path is missing", sensorConfig.ID)
		}
		if err := validateUnit(sensorConfig.ID, sensorConfig.File.Unit); err != nil {
			return err
		}
	}

	if sensorConfig.Cmd != nil {
		if len(strings.TrimSpace(sensorConfig.Cmd.Exec)) <= 0 {
			return fmt.Errorf("sensor %s: executable is missing", sensorConfig.ID)
		}
		if err := validateUnit(sensorConfig.ID, sensorConfig.Cmd.Unit); err != nil {
			return err
		}
	}

	return nil
}

func validateUnit(sensorId string, unit TemperatureUnit) error {
	if len(unit) == 0 {
		return nil
	}
	if !slices.Contains(TemperatureUnits, unit) {
		return fmt.Errorf("sensor %s: unknown temperature unit '%s'", sensorId, unit)
	}
	return nil
}

func validateFan(config *Configuration) error {
	fanConfig := &config.Fan

	subConfigs := 0
	if fanConfig.File != nil {
		subConfigs++
	}
	if fanConfig.Cmd != nil {
		subConfigs++
	}
	if fanConfig.Rpio != nil {
		subConfigs++
	}
	if fanConfig.Gpiocdev != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("fan %s: only one fan type can be used", fanConfig.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("fan %s: sub-configuration for fan is missing, use one of: file | cmd | rpio | gpiocdev", fanConfig.ID)
	}

	if fanConfig.File != nil && len(strings.TrimSpace(fanConfig.File.Path)) <= 0 {
		return fmt.Errorf("fan %s: file path is missing", fanConfig.ID)
	}

	if fanConfig.Cmd != nil && len(strings.TrimSpace(fanConfig.Cmd.Exec)) <= 0 {
		return fmt.Errorf("fan %s: executable is missing", fanConfig.ID)
	}

	if fanConfig.Rpio != nil {
		// BCM numbering, the 40 pin header exposes GPIO 0-27
		if fanConfig.Rpio.Pin < 0 || fanConfig.Rpio.Pin > 27 {
			return fmt.Errorf("fan %s: invalid rpio pin %d, must be within [0, 27]", fanConfig.ID, fanConfig.Rpio.Pin)
		}
	}

	if fanConfig.Gpiocdev != nil {
		if len(strings.TrimSpace(fanConfig.Gpiocdev.Chip)) <= 0 {
			return fmt.Errorf("fan %s: gpiocdev chip is missing", fanConfig.ID)
		}
		if fanConfig.Gpiocdev.Line < 0 {
			return fmt.Errorf("fan %s: invalid gpiocdev line %d", fanConfig.ID, fanConfig.Gpiocdev.Line)
		}
	}

	return nil
}

func validateApi(config *Configuration) error {
	apiConfig := &config.Api
	if !apiConfig.Enabled {
		return nil
	}

	if apiConfig.Port <= 0 || apiConfig.Port > 65535 {
		return fmt.Errorf("api: invalid port %d", apiConfig.Port)
	}

	mountPoint := strings.TrimSuffix(apiConfig.MountPoint, "/")
	if !strings.HasPrefix(apiConfig.MountPoint, "/") {
		return fmt.Errorf("api: mountPoint must start with '/', got '%s'", apiConfig.MountPoint)
	}
	if slices.Contains(reservedMountPoints, mountPoint) || mountPoint == "" {
		return fmt.Errorf("api: mountPoint '%s' is reserved", apiConfig.MountPoint)
	}

	return nil
}

func validateStatistics(config *Configuration) error {
	statisticsConfig := &config.Statistics
	if !statisticsConfig.Enabled {
		return nil
	}

	if statisticsConfig.Port <= 0 || statisticsConfig.Port > 65535 {
		return fmt.Errorf("statistics: invalid port %d", statisticsConfig.Port)
	}
	if config.Api.Enabled && config.Api.Port == statisticsConfig.Port {
		return fmt.Errorf("statistics: port %d is already used by the api", statisticsConfig.Port)
	}

	return nil
}

func validateMqtt(config *Configuration) error {
	mqttConfig := &config.Mqtt
	if !mqttConfig.Enabled {
		return nil
	}

	if len(strings.TrimSpace(mqttConfig.Broker)) <= 0 {
		return errors.New("mqtt: broker is missing")
	}
	if len(strings.TrimSpace(mqttConfig.Topic)) <= 0 {
		return errors.New("mqtt: topic is missing")
	}

	return nil
}
