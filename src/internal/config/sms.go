package config

import (
	"github.com/spf13/viper"

	"quotation-service/src/pkg/sms"
)

func NewSmsSender(config *viper.Viper) sms.Sender {
	return sms.NewTwilioSender(
		config.GetString("twilio.account_sid"),
		config.GetString("twilio.auth_token"),
		config.GetString("twilio.from_number"),
	)
}
