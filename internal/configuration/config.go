package configuration

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/spf13/viper"
)

type Configuration struct {
	// Threshold is the initial trip point in whole degrees celsius
	Threshold int `json:"threshold"`
	// ControllerTickRate is the time between two control loop ticks
	ControllerTickRate time.Duration `json:"controllerTickRate"`
	// HistorySize is the number of temperature samples kept for statistics
	HistorySize int `json:"historySize"`

	Sensor SensorConfig `json:"sensor"`
	Fan    FanConfig    `json:"fan"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
	Mirror     MirrorConfig     `json:"mirror"`
	Mqtt       MqttConfig       `json:"mqtt"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("rpifan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/rpifan/")
	}

	viper.SetEnvPrefix("rpifan")
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("threshold", 50)
	viper.SetDefault("controllerTickRate", 5*time.Second)
	viper.SetDefault("historySize", 60)

	viper.SetDefault("sensor.id", "cpu")
	viper.SetDefault("fan.id", "fan")

	viper.SetDefault("api.enabled", true)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)
	viper.SetDefault("api.mountPoint", "/rpifan")

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("mirror.enabled", false)
	viper.SetDefault("mirror.directory", "/run/rpifan")

	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.broker", "tcp://localhost:1883")
	viper.SetDefault("mqtt.clientId", "rpifan")
	viper.SetDefault("mqtt.topic", "rpifan/fan")
	viper.SetDefault("mqtt.connectTimeout", 10*time.Second)
}

// DetectConfigFile reads the config file and returns its path.
// A missing config file is not an error, the defaults are used instead.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			ui.Warning("No configuration file found, using defaults")
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			TemperatureUnitHookFunc(),
		),
	))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

// LoadAndValidate reads, decodes and validates the configuration
func LoadAndValidate() (string, error) {
	configPath := DetectConfigFile()
	LoadConfig()
	return configPath, Validate(configPath)
}

// ReadConfigFile detects, loads and validates the configuration, any error is fatal
func ReadConfigFile() string {
	configPath, err := LoadAndValidate()
	if len(configPath) > 0 {
		ui.Info("Using configuration file at: %s", configPath)
	}
	if err != nil {
		ui.Fatal("Config Validation Error: %v", err)
	}
	return configPath
}
