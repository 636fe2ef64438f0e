package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"quotation-service/src/pkg/log"
)

// NewRedis returns nil when the cache is disabled; callers treat a nil client
// as "no cache".
func NewRedis(config *viper.Viper, logger log.Log) redis.UniversalClient {
	if !config.GetBool("redis.enabled") {
		logger.Info("redis-config", "Redis cache is disabled in configuration", "redis", "")
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.GetString("redis.host"), config.GetInt("redis.port")),
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.db"),
	})
}
