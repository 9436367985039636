// Package config provides YAML-based platform configuration. It covers only
// platform concerns: timing, sound, storage, serving, screen routing.
// Physics constants are compile-time fixed in the sim package and are not
// configurable here.
package config

// Config is the full platform configuration.
type Config struct {
	// TickRate is the number of logical ticks per second.
	TickRate int `yaml:"tick_rate"`

	// Sound enables tone playback.
	Sound bool `yaml:"sound"`

	// ShowObjective routes the title screen through the objective card.
	ShowObjective bool `yaml:"show_objective"`

	// Debug enables the level-complete debug key during play.
	Debug bool `yaml:"debug"`

	// DBPath is where the flight log database lives.
	DBPath string `yaml:"db_path"`

	SSH SSHConfig `yaml:"ssh"`
}

// SSHConfig configures the remote-play server.
type SSHConfig struct {
	// Address is the host:port to listen on.
	Address string `yaml:"address"`

	// HostKeyPath is the host key file; empty auto-generates one under
	// ~/.ravine.
	HostKeyPath string `yaml:"host_key"`

	// IdleTimeoutMinutes closes idle connections after this long.
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes"`
}
