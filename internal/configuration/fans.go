package configuration

type FanConfig struct {
	ID       string             `json:"id"`
	File     *FileFanConfig     `json:"file,omitempty"`
	Cmd      *CmdFanConfig      `json:"cmd,omitempty"`
	Rpio     *RpioFanConfig     `json:"rpio,omitempty"`
	Gpiocdev *GpiocdevFanConfig `json:"gpiocdev,omitempty"`
}

type FileFanConfig struct {
	// Path to a file which accepts "1" (energized) and "0" (de-energized),
	// f.ex. a sysfs gpio value file
	Path      string `json:"path"`
	ActiveLow bool   `json:"activeLow"`
}

type CmdFanConfig struct {
	Exec    string   `json:"exec"`
	OnArgs  []string `json:"onArgs"`
	OffArgs []string `json:"offArgs"`
}

type RpioFanConfig struct {
	// Pin is the BCM pin number
	Pin       int  `json:"pin"`
	ActiveLow bool `json:"activeLow"`
}

type GpiocdevFanConfig struct {
	Chip      string `json:"chip"`
	Line      int    `json:"line"`
	ActiveLow bool   `json:"activeLow"`
}
