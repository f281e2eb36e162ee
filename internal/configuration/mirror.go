package configuration

// MirrorConfig configures a read-only copy of the endpoint tree on disk,
// refreshed after every control loop tick.
type MirrorConfig struct {
	Enabled   bool   `json:"enabled"`
	Directory string `json:"directory"`
}
