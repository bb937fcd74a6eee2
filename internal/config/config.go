package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address         string        `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	DatabasePath    string        `env:"DATABASE_PATH"    envDefault:"/tmp/fiado.db"`
	RedisAddress    string        `env:"REDIS_ADDRESS"    envDefault:"localhost:6379"`
	SessionTTL      time.Duration `env:"SESSION_TTL"      envDefault:"24h"`
	LogLvl          string        `env:"LOG_LVL"          envDefault:"info"`
	DefaultLogin    string        `env:"DEFAULT_LOGIN"    envDefault:"admin"`
	DefaultPassword string        `env:"DEFAULT_PASSWORD" envDefault:"1234"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the sqlite database file")
	flag.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "redis address for session storage")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
