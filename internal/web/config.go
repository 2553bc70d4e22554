package web

import (
	"os"
)

type Config struct {
	AppName   string
	StaticDir string
}

func configFromEnv() *Config {
	config := &Config{
		AppName: "Simple Calculator",
	}

	if name := os.Getenv(AppNameEnv); name != "" {
		config.AppName = name
	}

	if dir := os.Getenv(StaticDirEnv); dir != "" {
		config.StaticDir = dir
	}

	return config
}
