package configuration

type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	// MountPoint is the path below which the status and threshold endpoints are served
	MountPoint string `json:"mountPoint"`
}
