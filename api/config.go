package api

import (
	"strings"
	"sync"

	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/spf13/viper"
)

const (
	BackendDynamo = "dynamo"
	BackendRedis  = "redis"
)

type Config struct {
	StorageConfig
	ServerConfig
	JuryConfig
}

type StorageConfig struct {
	Backend        string
	TableNameRooms string
	TableNameKV    string
	RedisAddr      string
	RedisPrefix    string
}

type ServerConfig struct {
	Port     int
	LogLevel string
}

type JuryConfig struct {
	Judges             []string
	ScoringVariant     string
	MaxConcurrentReads int
}

var settingsOnce sync.Once

func ReadConfig() *Config {
	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:        strings.ToLower(getStringOrDefault("storage.backend", BackendDynamo)),
			TableNameRooms: getString("storage.TableNameRooms"),
			TableNameKV:    getStringOrDefault("storage.TableNameKV", "JuryKeyValue"),
			RedisAddr:      getStringOrDefault("storage.redisAddr", "localhost:6379"),
			RedisPrefix:    getStringOrDefault("storage.redisPrefix", "jury:"),
		},
		ServerConfig: ServerConfig{
			Port:     getIntOrDefault("server.port", 8080),
			LogLevel: getStringOrDefault("server.logLevel", "debug"),
		},
		JuryConfig: JuryConfig{
			Judges:             viper.GetStringSlice("jury.judges"),
			ScoringVariant:     getStringOrDefault("jury.scoringVariant", "standard"),
			MaxConcurrentReads: getIntOrDefault("jury.maxConcurrentReads", 8),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Printf("Reading settings! backend=%s judges=%d variant=%s",
			conf.Backend, len(conf.Judges), conf.ScoringVariant)
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
