package sensors

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rpifan/rpifan/internal/configuration"
)

const ThermalBasePath = "/sys/class/thermal"

// ThermalZone is a kernel thermal zone, f.ex. the SoC temperature of a Raspberry Pi
type ThermalZone struct {
	Name string
	Type string
	// Path of the temperature file, in millicelsius
	Path string
}

// FindThermalZones lists the thermal zones below basePath
func FindThermalZones(basePath string) []ThermalZone {
	matches, err := filepath.Glob(filepath.Join(basePath, "thermal_zone*"))
	if err != nil {
		return []ThermalZone{}
	}
	sort.Strings(matches)

	result := []ThermalZone{}
	for _, dir := range matches {
		tempPath := filepath.Join(dir, "temp")
		if _, err := os.Stat(tempPath); err != nil {
			continue
		}
		zoneType, _ := os.ReadFile(filepath.Join(dir, "type"))
		result = append(result, ThermalZone{
			Name: filepath.Base(dir),
			Type: strings.TrimSpace(string(zoneType)),
			Path: tempPath,
		})
	}
	return result
}

// SensorConfig returns a file sensor configuration for this zone
func (z ThermalZone) SensorConfig() configuration.SensorConfig {
	return configuration.SensorConfig{
		ID: z.Name,
		File: &configuration.FileSensorConfig{
			Path: z.Path,
			Unit: configuration.TemperatureUnitMilliCelsius,
		},
	}
}
