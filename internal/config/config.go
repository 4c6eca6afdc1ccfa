// internal/config/config.go
package config

type Config struct {
	Devices   []string        `yaml:"devices"`
	Transport TransportConfig `yaml:"transport"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Drive     DriveConfig     `yaml:"drive"`
	Watch     WatchConfig     `yaml:"watch"`
	Mirror    *MirrorConfig   `yaml:"mirror"` // optional, opt-in
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Driver        string `yaml:"driver"`          // tty | serial
	BaudRate      int    `yaml:"baud_rate"`       // serial driver only
	ReadTimeoutMs int    `yaml:"read_timeout_ms"` // 0 => block
}

// ---- DISCOVERY (diagnostic listing only) ----

type DiscoveryConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// ---- DRIVE ----

type DriveConfig struct {
	// ExitSafeStart sends Exit Safe Start before the speed commands.
	ExitSafeStart *bool `yaml:"exit_safe_start"`
	// StopOnExit sends Stop to every controller after the hold.
	StopOnExit bool `yaml:"stop_on_exit"`
	// BrakeOnExit applies this brake amount after the hold instead of stopping.
	BrakeOnExit *uint8 `yaml:"brake_on_exit"`
}

// ---- WATCH ----

type WatchConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- MIRROR ----

type MirrorConfig struct {
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ExitSafeStartOnDrive reports whether drive mode releases safe start first.
func (c *Config) ExitSafeStartOnDrive() bool {
	return c.Drive.ExitSafeStart == nil || *c.Drive.ExitSafeStart
}
