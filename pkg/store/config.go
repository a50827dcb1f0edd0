package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath     = "~/.todo.db"
	DefaultKey      = "todos"
	DefaultAddr     = "127.0.0.1:8080"
	DefaultLogLevel = "warn"
)

type Config interface {
	BasePath() string
	Key() string
	Addr() string
	LogLevel() string
}

// LoadConfig reads .todo.yaml from $TODO_CONFIG_PATH or the working directory,
// with TODO_* environment variables taking precedence.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()
	_ = v.BindEnv("log-level", "TODO_LOG_LEVEL")

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:   path,
		Name:   v.GetString("key"),
		Listen: v.GetString("addr"),
		Level:  v.GetString("log-level"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Name   string `json:"key"`
	Listen string `json:"addr"`
	Level  string `json:"log-level"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	if f.Name == "" {
		return DefaultKey
	}
	return f.Name
}

func (f *fileConfig) Addr() string {
	if f.Listen == "" {
		return DefaultAddr
	}
	return f.Listen
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}
