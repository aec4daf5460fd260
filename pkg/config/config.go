package config

// DeviceConfig defines a single deployment target board
type DeviceConfig struct {
	Name    string                 `json:"name"`              // user-friendly name (e.g., "pico", "bench_board")
	Type    string                 `json:"type"`              // transport type: tool, mount, sftp
	Enabled *bool                  `json:"enabled,omitempty"` // defaults to true if omitted
	Options map[string]interface{} `json:"options,omitempty"` // transport-specific options
}

// Config is the root configuration structure
type Config struct {
	SourceDir            string         `json:"source_dir"`
	RemoteDir            string         `json:"remote_dir,omitempty"`             // destination prefix on the board (default: /)
	Exclude              []string       `json:"exclude,omitempty"`                // filenames skipped in full-directory mode
	MaxConcurrentDevices int            `json:"max_concurrent_devices,omitempty"` // default: 1
	LogLevel             string         `json:"log_level,omitempty"`              // debug, info, warn, error (default: info)
	LogFormat            string         `json:"log_format,omitempty"`             // console, json (default: console)
	Devices              []DeviceConfig `json:"devices"`
}

// IsEnabled returns whether the device is a deployment target.
// A pointer distinguishes an omitted value from an explicit false;
// omitted means enabled.
func (d *DeviceConfig) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// GetRemoteDir returns the destination prefix on the board (defaults to the filesystem root)
func (c *Config) GetRemoteDir() string {
	if c.RemoteDir != "" {
		return c.RemoteDir
	}
	return "/"
}

// GetMaxConcurrentDevices returns the device fan-out bound (defaults to 1,
// which keeps a single-board run strictly sequential end to end)
func (c *Config) GetMaxConcurrentDevices() int {
	if c.MaxConcurrentDevices > 0 {
		return c.MaxConcurrentDevices
	}
	return 1
}

// GetLogLevel returns the log level (defaults to info)
func (c *Config) GetLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	return "info"
}

// GetLogFormat returns the log format (defaults to console)
func (c *Config) GetLogFormat() string {
	if c.LogFormat != "" {
		return c.LogFormat
	}
	return "console"
}

// IsExcluded reports whether a filename is on the exclude list
func (c *Config) IsExcluded(name string) bool {
	for _, e := range c.Exclude {
		if e == name {
			return true
		}
	}
	return false
}

// EnabledDevices returns the devices that should receive this deployment,
// optionally restricted to a single named device. The second return value is
// false when a restriction was given but no device matched it.
func (c *Config) EnabledDevices(only string) ([]DeviceConfig, bool) {
	var devices []DeviceConfig
	for _, d := range c.Devices {
		if !d.IsEnabled() {
			continue
		}
		if only != "" && d.Name != only {
			continue
		}
		devices = append(devices, d)
	}
	if only != "" && len(devices) == 0 {
		return nil, false
	}
	return devices, true
}
