package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything read from the environment: where the durable
// store lives plus the API keys the external-service clients need.
type Config interface {
	BasePath() string
	OpenCageKey() string
	PexelsKey() string
}

// LoadConfig reads the .travelnello config file (current directory or home)
// and the TRAVELNELLO_* environment, falling back to ~/.travelnello.db for
// the store path.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.travelnello.db")
	viper.SetConfigName(".travelnello") // .yaml is implicit
	viper.SetEnvPrefix("TRAVELNELLO")
	viper.AutomaticEnv()

	if override := os.Getenv("TRAVELNELLO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		OpenCage: viper.GetString("opencage_key"),
		Pexels:   viper.GetString("pexels_key"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	OpenCage string `json:"opencage_key"`
	Pexels   string `json:"pexels_key"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) OpenCageKey() string { return f.OpenCage }

func (f *fileConfig) PexelsKey() string { return f.Pexels }
