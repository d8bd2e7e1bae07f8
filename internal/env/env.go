package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	// SUTEGO_CONFIG_PATH points at the YAML configuration file.
	SUTEGO_CONFIG_PATH string

	// SUTEGO_DATA_PATH is the directory holding tasks.json, the recycle
	// bin and other persistent state.
	SUTEGO_DATA_PATH string

	// SUTEGO_LOG_PATH is the debug log file.
	SUTEGO_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("SUTEGO_CONFIG_PATH"); e != "" {
		SUTEGO_CONFIG_PATH = e
	} else {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		SUTEGO_CONFIG_PATH = filepath.Join(configDir, "sutego", "config.yaml")
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		dataDir = filepath.Join(homeDir, defaultXDGDataDirname)
	}

	if e := os.Getenv("SUTEGO_DATA_PATH"); e != "" {
		SUTEGO_DATA_PATH = e
	} else {
		SUTEGO_DATA_PATH = filepath.Join(dataDir, "sutego")
	}

	if e := os.Getenv("SUTEGO_LOG_PATH"); e != "" {
		SUTEGO_LOG_PATH = e
	} else {
		SUTEGO_LOG_PATH = filepath.Join(SUTEGO_DATA_PATH, "debug.log")
	}
}
