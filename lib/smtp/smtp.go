package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

var ErrNotConfigured = errors.New("klien smtp belum dikonfigurasi")

type Provider interface {
	SendEMail(to, subject, message string) error
	// SendSMS mengirim pesan ke nomor telepon lewat gateway email->SMS/WhatsApp
	SendSMS(phone, message string) error
	IsConfigured() bool
}

type Config struct {
	User       string
	Password   string
	Host       string
	Port       string
	TLSEnabled bool
	From       string
	SmsDomain  string
}

type sendFunc func(addr string, a sasl.Client, from string, to []string, r *strings.Reader) error

func Connect(cfg Config) error {
	Instance = NewInstance(cfg)
	return nil
}

func NewInstance(cfg Config) Provider {
	i := &impl{cfg: cfg}
	i.send = func(addr string, a sasl.Client, from string, to []string, r *strings.Reader) error {
		if cfg.TLSEnabled {
			return smtp.SendMailTLS(addr, a, from, to, r)
		}
		return smtp.SendMail(addr, a, from, to, r)
	}
	return i
}

type impl struct {
	cfg  Config
	send sendFunc
}

func (i impl) IsConfigured() bool {
	return i.cfg.User != "" && i.cfg.Host != "" && i.cfg.Port != ""
}

func (i impl) SendEMail(to, subject, message string) error {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("Email tidak dikirim, klien smtp belum dikonfigurasi")
		return ErrNotConfigured
	}
	auth := sasl.NewPlainClient("", i.cfg.User, i.cfg.Password)
	body := strings.NewReader(buildMessage(i.sender(), to, subject, message))
	if err := i.send(i.cfg.Host+":"+i.cfg.Port, auth, i.sender(), []string{to}, body); err != nil {
		logger.WithError(err).Error("Kesalahan mengirim email")
		return errors.Wrap(err, "kesalahan mengirim email")
	}
	logger.Info("email terkirim")
	return nil
}

func (i impl) SendSMS(phone, message string) error {
	if i.cfg.SmsDomain == "" {
		log.Warn("SMS tidak dikirim, domain gateway belum dikonfigurasi")
		return ErrNotConfigured
	}
	return i.SendEMail(GatewayAddress(phone, i.cfg.SmsDomain), "Broilink", message)
}

func (i impl) sender() string {
	if i.cfg.From != "" {
		return i.cfg.From
	}
	return i.cfg.User
}

// GatewayAddress: "+62 812-3456" -> "628123456@<domain>"
func GatewayAddress(phone, domain string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String() + "@" + domain
}

func buildMessage(from, to, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n",
		from, to, subject, message)
}
