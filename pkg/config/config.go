// Package config loads .uikit settings and watches override skins.
package config

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/uikit/pkg/schedule"
)

// Config is what the command line needs from .uikit and the environment.
type Config interface {
	// SkinsPath is a directory of override skins, or empty.
	SkinsPath() string
	LogFile() string
	LogLevel() string
	// Debounce is the live typing delay handed to textboxes.
	Debounce() time.Duration
}

// Load reads .uikit from UIKIT_CONFIG_PATH or the working directory. A
// missing file is fine; every key can also come from UIKIT_* variables.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("skins", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("debounce", schedule.DefaultDelay)
	v.SetConfigName(".uikit") // .yaml is implicit
	v.SetEnvPrefix("UIKIT")
	v.AutomaticEnv()
	_ = v.BindEnv("log.file", "UIKIT_LOG_FILE")
	_ = v.BindEnv("log.level", "UIKIT_LOG_LEVEL")

	if override := os.Getenv("UIKIT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	skins, err := expand(v.GetString("skins"))
	if err != nil {
		return nil, err
	}
	logFile, err := expand(v.GetString("log.file"))
	if err != nil {
		return nil, err
	}
	debounce := v.GetDuration("debounce")
	if debounce <= 0 {
		debounce = schedule.DefaultDelay
	}

	return &fileConfig{
		Skins: skins,
		Log:   logConfig{File: logFile, Level: v.GetString("log.level")},
		Delay: debounce,
	}, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return p, nil
}

type logConfig struct {
	File  string `json:"file,omitempty"`
	Level string `json:"level"`
}

type fileConfig struct {
	Skins string        `json:"skins,omitempty"`
	Log   logConfig     `json:"log"`
	Delay time.Duration `json:"debounce"`
}

func (f *fileConfig) SkinsPath() string       { return f.Skins }
func (f *fileConfig) LogFile() string         { return f.Log.File }
func (f *fileConfig) LogLevel() string        { return f.Log.Level }
func (f *fileConfig) Debounce() time.Duration { return f.Delay }

// Static is a Config built in code, for tests and embedding.
type Static struct {
	Skins string
	File  string
	Level string
	Delay time.Duration
}

func (s Static) SkinsPath() string { return s.Skins }
func (s Static) LogFile() string   { return s.File }
func (s Static) LogLevel() string {
	if s.Level == "" {
		return "info"
	}
	return s.Level
}
func (s Static) Debounce() time.Duration {
	if s.Delay <= 0 {
		return schedule.DefaultDelay
	}
	return s.Delay
}
