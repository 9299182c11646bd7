package store

import (
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the read-only settings contract the store and analytics surface
// consume: where the journal lives on disk and which day starts the week.
type Config interface {
	BasePath() string
	WeekStart() time.Weekday
}

// LoadConfig reads settings from a .loop config file, the environment
// (LOOP_*), or defaults. The week start only affects weekday labels in
// timelines, never which calendar day an entry falls on.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.loop.db")
	viper.SetDefault("weekstart", "sunday")
	viper.SetConfigName(".loop") // .yaml is implicit
	viper.SetEnvPrefix("LOOP")
	viper.AutomaticEnv()

	if override := os.Getenv("LOOP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:      path,
		WeekBegin: viper.GetString("weekstart"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	WeekBegin string `json:"weekstart"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) WeekStart() time.Weekday {
	if strings.EqualFold(strings.TrimSpace(f.WeekBegin), "monday") {
		return time.Monday
	}
	return time.Sunday
}
