package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/congklak-backend/internal/bot"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7777"`
	Redis      Redis         `yaml:"redis"`
	GameTTL    time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"24h"`
	Rules      entity.Rules  `yaml:"rules"`

	BotStrategy string `yaml:"bot-strategy" env:"BOT_STRATEGY" env-default:"first-non-empty"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Rules.Validate(); err != nil {
		panic(fmt.Errorf("unable to load game rules: %w", err))
	}

	if _, err := bot.ByName(config.BotStrategy); err != nil {
		panic(fmt.Errorf("unable to load bot strategy: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
