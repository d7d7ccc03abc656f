package config

// Port configuration constants
const (
	// DefaultPort is the port used when PORT is unset or invalid
	DefaultPort = 3000

	// MinPort and MaxPort bound the valid TCP port range
	MinPort = 1
	MaxPort = 65535
)
