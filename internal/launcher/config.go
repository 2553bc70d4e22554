package launcher

import (
	"os"
	"strconv"
	"time"
)

// Количество портов, которые перебираются после PORT, если PORT_MAX не задан.
const portSpan = 100

type Config struct {
	Host            string
	Port            int
	PortMax         int
	StartRetries    int
	RetryDelay      time.Duration
	OpenBrowser     bool
	ShutdownTimeout time.Duration
}

func configFromEnv() *Config {
	config := Config{
		Host:            "localhost",
		Port:            8000,
		PortMax:         8100,
		StartRetries:    3,
		RetryDelay:      time.Second,
		OpenBrowser:     true,
		ShutdownTimeout: 10 * time.Second,
	}

	if host := os.Getenv(HostEnv); host != "" {
		config.Host = host
	}

	if val := os.Getenv(PortEnv); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			config.Port = port
			config.PortMax = port + portSpan
		}
	}

	if val := os.Getenv(PortMaxEnv); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			config.PortMax = port
		}
	}

	if val := os.Getenv(StartRetriesEnv); val != "" {
		if retries, err := strconv.Atoi(val); err == nil && retries > 0 {
			config.StartRetries = retries
		}
	}

	if val := os.Getenv(RetryDelayMsEnv); val != "" {
		if ms, err := strconv.Atoi(val); err == nil && ms >= 0 {
			config.RetryDelay = time.Duration(ms) * time.Millisecond
		}
	}

	if val := os.Getenv(OpenBrowserEnv); val != "" {
		if open, err := strconv.ParseBool(val); err == nil {
			config.OpenBrowser = open
		}
	}

	if val := os.Getenv(ShutdownTimeoutMsEnv); val != "" {
		if ms, err := strconv.Atoi(val); err == nil && ms > 0 {
			config.ShutdownTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if config.PortMax < config.Port {
		config.PortMax = config.Port
	}

	return &config
}
