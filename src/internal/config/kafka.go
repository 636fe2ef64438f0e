package config

import (
	"github.com/IBM/sarama"
	"github.com/spf13/viper"

	"quotation-service/src/pkg/log"
)

// NewKafkaProducer returns nil when the producer is disabled; event publishers
// treat a nil producer as a no-op.
func NewKafkaProducer(config *viper.Viper, logger log.Log) sarama.SyncProducer {
	if !config.GetBool("kafka.producer.enabled") {
		logger.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(config.GetStringSlice("kafka.brokers"), saramaConfig)
	if err != nil {
		panic(err)
	}

	return producer
}
