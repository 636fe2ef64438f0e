package config

import (
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"quotation-service/src/pkg/geocode"
	"quotation-service/src/pkg/log"
)

func NewGeocoder(config *viper.Viper, cache redis.UniversalClient, logger log.Log) geocode.Resolver {
	return geocode.NewCopomexClient(
		config.GetString("copomex.base_url"),
		config.GetString("copomex.token"),
		cache,
		logger,
	)
}
