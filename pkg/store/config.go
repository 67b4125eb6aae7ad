package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the client-side settings for talking to the fronts server.
type Config interface {
	ServerURL() string
	SnapshotPath() string
	ConfirmDeletes() bool
}

// LoadConfig reads settings from a .fronts config file and FRONTS_* env vars.
func LoadConfig() (Config, error) {
	viper.SetDefault("server", "http://localhost:8080")
	viper.SetDefault("snapshots", "~/.fronts/snapshots")
	viper.SetDefault("confirm-deletes", true)
	viper.SetConfigName(".fronts") // .yaml is implicit
	viper.SetEnvPrefix("FRONTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("FRONTS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Server:    strings.TrimRight(viper.GetString("server"), "/"),
		Snapshots: expandHome(viper.GetString("snapshots")),
		Confirm:   viper.GetBool("confirm-deletes"),
	}, nil
}

type fileConfig struct {
	Server    string `json:"server"`
	Snapshots string `json:"snapshots"`
	Confirm   bool   `json:"confirmDeletes"`
}

func (f *fileConfig) ServerURL() string    { return f.Server }
func (f *fileConfig) SnapshotPath() string { return f.Snapshots }
func (f *fileConfig) ConfirmDeletes() bool { return f.Confirm }

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
