package configuration

import "time"

type MqttConfig struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientId string `json:"clientId"`
	Topic    string `json:"topic"`
	// ConnectTimeout limits how long the initial connect may take
	ConnectTimeout time.Duration `json:"connectTimeout"`
}
