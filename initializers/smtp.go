package initializers

import (
	"broilink-backend/config"
	"broilink-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	err := smtp.Connect(smtp.Config{
		User:       config.Conf.Smtp.User,
		Password:   config.Conf.Smtp.Password,
		Host:       config.Conf.Smtp.Host,
		Port:       config.Conf.Smtp.Port,
		TLSEnabled: *config.Conf.Smtp.TLSEnabled,
		From:       config.Conf.Smtp.From,
		SmsDomain:  config.Conf.Smtp.SmsGatewayDomain,
	})
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.IsConfigured() {
		log.Warn("SMTP tidak dikonfigurasi, kode OTP tidak dikirim")
	}
}
