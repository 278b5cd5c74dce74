package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	JWT        JWT
	LoggerMode LoggerMode
	Upload     Upload
	Websocket  Websocket
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret    string
	ExpiredIn int
}

type Upload struct {
	Dir           string
	PublicPrefix  string
	MaxFiles      int
	MaxFileSizeMB int64
}

type Websocket struct {
	ReadLimit  int64
	PingPeriod int // seconds
	SendBuffer int
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "uploads/messages"
	}
	if c.Upload.PublicPrefix == "" {
		c.Upload.PublicPrefix = "/uploads/messages"
	}
	if c.Upload.MaxFiles == 0 {
		c.Upload.MaxFiles = 5
	}
	if c.Upload.MaxFileSizeMB == 0 {
		c.Upload.MaxFileSizeMB = 10
	}
	if c.Websocket.ReadLimit == 0 {
		c.Websocket.ReadLimit = 4096
	}
	if c.Websocket.PingPeriod == 0 {
		c.Websocket.PingPeriod = 20
	}
	if c.Websocket.SendBuffer == 0 {
		c.Websocket.SendBuffer = 16
	}
}
