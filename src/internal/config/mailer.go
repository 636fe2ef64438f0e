package config

import (
	"github.com/spf13/viper"

	"quotation-service/src/pkg/mailer"
)

func NewMailer(config *viper.Viper) mailer.Mailer {
	return mailer.NewSMTPMailer(
		config.GetString("mail.host"),
		config.GetInt("mail.port"),
		config.GetString("mail.username"),
		config.GetString("mail.password"),
		config.GetString("mail.from_name"),
		config.GetString("mail.from_email"),
	)
}
