package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine, the process
// environment is used as is then.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultEnvPath
		}
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s is not an integer (%q), using %d", key, v, def)
		return def
	}
	return i
}

func (c *Config) GetBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: %s is not a bool (%q), using %t", key, v, def)
		return def
	}
	return b
}

// GetDuration accepts Go duration strings ("5s", "1h30m").
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s is not a duration (%q), using %s", key, v, def)
		return def
	}
	return d
}
