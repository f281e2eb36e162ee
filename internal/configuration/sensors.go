package configuration

type SensorConfig struct {
	ID   string            `json:"id"`
	File *FileSensorConfig `json:"file,omitempty"`
	Cmd  *CmdSensorConfig  `json:"cmd,omitempty"`
}

type FileSensorConfig struct {
	// Path to a file containing a single numeric temperature value
	Path string          `json:"path"`
	Unit TemperatureUnit `json:"unit"`
}

type CmdSensorConfig struct {
	// Exec is the path to an executable that prints a single numeric temperature value
	Exec string          `json:"exec"`
	Args []string        `json:"args"`
	Unit TemperatureUnit `json:"unit"`
}
