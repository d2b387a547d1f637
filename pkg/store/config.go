package store

import (
	"log"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the persistence location and remote service settings.
type Config interface {
	BasePath() string
	APIURL() string
	APIKey() string
	APITimeout() time.Duration
}

// LoadConfig reads .forkful config (file or FORKFUL_* environment) with
// defaults that work out of the box.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.forkful.db")
	viper.SetDefault("api_url", "https://forkify-api.herokuapp.com/api/v2/recipes/")
	viper.SetDefault("api_key", "")
	viper.SetDefault("api_timeout", "10s")
	viper.SetConfigName(".forkful") // .yaml is implicit
	viper.SetEnvPrefix("FORKFUL")
	viper.AutomaticEnv()

	if override := os.Getenv("FORKFUL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:    path,
		URL:     viper.GetString("api_url"),
		Key:     viper.GetString("api_key"),
		Timeout: viper.GetDuration("api_timeout"),
	}, nil
}

type fileConfig struct {
	Path    string        `json:"path"`
	URL     string        `json:"api_url"`
	Key     string        `json:"api_key"`
	Timeout time.Duration `json:"api_timeout"`
}

func (f *fileConfig) BasePath() string          { return f.Path }
func (f *fileConfig) APIURL() string            { return f.URL }
func (f *fileConfig) APIKey() string            { return f.Key }
func (f *fileConfig) APITimeout() time.Duration { return f.Timeout }
