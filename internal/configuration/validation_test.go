package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createValidConfig() Configuration {
	return Configuration{
		Threshold:          50,
		ControllerTickRate: 5 * time.Second,
		HistorySize:        60,
		Sensor: SensorConfig{
			ID: "cpu",
			File: &FileSensorConfig{
				Path: "/sys/class/thermal/thermal_zone0/temp",
				Unit: TemperatureUnitMilliCelsius,
			},
		},
		Fan: FanConfig{
			ID: "fan",
			Rpio: &RpioFanConfig{
				Pin: 17,
			},
		},
		Api: ApiConfig{
			Enabled:    true,
			Host:       "localhost",
			Port:       9001,
			MountPoint: "/rpifan",
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := createValidConfig()

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateThresholdOutOfRange(t *testing.T) {
	for _, threshold := range []int{19, 91} {
		// GIVEN
		config := createValidConfig()
		config.Threshold = threshold

		// WHEN
		err := validateConfig(&config, "")

		// THEN
		assert.Error(t, err)
	}
}

func TestValidateThresholdBounds(t *testing.T) {
	for _, threshold := range []int{MinThreshold, MaxThreshold} {
		// GIVEN
		config := createValidConfig()
		config.Threshold = threshold

		// WHEN
		err := validateConfig(&config, "")

		// THEN
		assert.NoError(t, err)
	}
}

func TestValidateTickRateNotPositive(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.ControllerTickRate = 0

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "controllerTickRate must be positive")
}

func TestValidateSensorSubConfigIsMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor.File = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "sensor cpu: sub-configuration for sensor is missing, use one of: file | cmd")
}

func TestValidateSensorMultipleSubConfigs(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor.Cmd = &CmdSensorConfig{Exec: "/usr/bin/temp"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "sensor cpu: only one sensor type can be used")
}

func TestValidateSensorFilePathMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor.File.Path = " "

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "sensor cpu: file path is missing")
}

func TestValidateFanSubConfigIsMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Rpio = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "fan fan: sub-configuration for fan is missing, use one of: file | cmd | rpio | gpiocdev")
}

func TestValidateFanMultipleSubConfigs(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Gpiocdev = &GpiocdevFanConfig{Chip: "gpiochip0", Line: 17}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "fan fan: only one fan type can be used")
}

func TestValidateFanRpioPinOutOfRange(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Rpio.Pin = 40

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "fan fan: invalid rpio pin 40, must be within [0, 27]")
}

func TestValidateFanGpiocdevChipMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Rpio = nil
	config.Fan.Gpiocdev = &GpiocdevFanConfig{Line: 17}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "fan fan: gpiocdev chip is missing")
}

func TestValidateApiReservedMountPoint(t *testing.T) {
	for _, mountPoint := range []string{"/", "/api", "/api/", "/alive"} {
		// GIVEN
		config := createValidConfig()
		config.Api.MountPoint = mountPoint

		// WHEN
		err := validateConfig(&config, "")

		// THEN
		assert.Error(t, err, mountPoint)
	}
}

func TestValidateApiRelativeMountPoint(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Api.MountPoint = "rpifan"

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "api: mountPoint must start with '/', got 'rpifan'")
}

func TestValidateApiDisabledIgnoresMountPoint(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Api.Enabled = false
	config.Api.MountPoint = ""

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateStatisticsPortCollision(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Statistics = StatisticsConfig{Enabled: true, Port: 9001}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "statistics: port 9001 is already used by the api")
}

func TestValidateMqttBrokerMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Mqtt = MqttConfig{Enabled: true, Topic: "rpifan/fan"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "mqtt: broker is missing")
}

func TestValidateMirrorDirectoryMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Mirror = MirrorConfig{Enabled: true}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "mirror: directory is missing")
}
