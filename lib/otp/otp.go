package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"broilink-backend/lib/metrics"
	"broilink-backend/lib/smtp"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/lib/utils/kvstore"
	"broilink-backend/lib/utils/lock"
	"broilink-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const CodeLength = 6

type Provider interface {
	// Send membuat kode baru untuk (userID, purpose) dan mengirimkannya ke phone.
	// target mengikat kode ke perubahan yang diminta
	Send(ctx context.Context, userID, purpose, phone, target string) (*SendResult, error)
	// Verify mencocokkan kode dan target; kode yang cocok langsung dihapus
	Verify(ctx context.Context, userID, purpose, code, target string) error
	Cancel(ctx context.Context, userID, purpose string) error
}

type Sender interface {
	SendSMS(phone, message string) error
}

type Config struct {
	TTL            time.Duration
	MaxAttempts    int
	ResendCooldown time.Duration
	LogCode        bool
}

type SendResult struct {
	SentTo    string
	ExpiresIn time.Duration
}

var Instance Provider

func NewHandler(store kvstore.Provider, sender Sender, cfg Config) {
	Instance = NewInstance(store, sender, cfg)
}

func NewInstance(store kvstore.Provider, sender Sender, cfg Config) Provider {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &impl{
		store:    store,
		sender:   sender,
		cfg:      cfg,
		generate: generateCode,
		now:      time.Now,
	}
}

type impl struct {
	store    kvstore.Provider
	sender   Sender
	cfg      Config
	generate func() (string, error)
	now      func() time.Time
}

type record struct {
	Code   string    `json:"code"`
	Phone  string    `json:"phone"`
	Target string    `json:"target"`
	SentAt time.Time `json:"sent_at"`
}

func codeKey(userID, purpose string) string {
	return "otp:code:" + purpose + ":" + userID
}

func attemptsKey(userID, purpose string) string {
	return "otp:attempts:" + purpose + ":" + userID
}

func cooldownKey(userID, purpose string) string {
	return "otp:cooldown:" + purpose + ":" + userID
}

func (i *impl) Send(ctx context.Context, userID, purpose, phone, target string) (*SendResult, error) {
	logger := log.WithFields(log.Fields{"user_id": userID, "purpose": purpose})
	if phone == "" {
		return nil, models.ValidationError("nomor telepon tujuan OTP belum diisi")
	}
	if i.cfg.ResendCooldown > 0 {
		_, found, err := i.store.Get(ctx, cooldownKey(userID, purpose))
		if err != nil {
			return nil, errors.Wrap(err, "gagal membaca cooldown OTP")
		}
		if found {
			metrics.OtpEvents.WithLabelValues(metrics.OtpCooldown).Inc()
			return nil, models.ValidationError(fmt.Sprintf("Tunggu %d detik sebelum meminta kode OTP baru", int(i.cfg.ResendCooldown.Seconds())))
		}
	}
	code, err := i.generate()
	if err != nil {
		return nil, errors.Wrap(err, "gagal membuat kode OTP")
	}
	rec := record{Code: code, Phone: phone, Target: target, SentAt: i.now()}
	if err = kvstore.SetJSON(ctx, i.store, codeKey(userID, purpose), rec, i.cfg.TTL); err != nil {
		return nil, errors.Wrap(err, "gagal menyimpan kode OTP")
	}
	if err = i.store.Delete(ctx, attemptsKey(userID, purpose)); err != nil {
		return nil, errors.Wrap(err, "gagal mereset percobaan OTP")
	}
	if i.cfg.ResendCooldown > 0 {
		if err = i.store.Set(ctx, cooldownKey(userID, purpose), []byte("1"), i.cfg.ResendCooldown); err != nil {
			return nil, errors.Wrap(err, "gagal menyimpan cooldown OTP")
		}
	}

	message := fmt.Sprintf("Kode OTP Broilink Anda: %s. Berlaku %d menit. Jangan berikan kode ini kepada siapa pun.",
		code, int(i.cfg.TTL.Minutes()))
	err = i.deliver(phone, message)
	if errors.Is(err, smtp.ErrNotConfigured) {
		if i.cfg.LogCode {
			logger.WithField("code", code).Warn("Pengiriman OTP tidak dikonfigurasi, kode hanya dicatat di log")
		} else {
			logger.Warn("Pengiriman OTP tidak dikonfigurasi")
		}
	} else if err != nil {
		// kode yang tidak terkirim tidak boleh bisa dipakai
		_ = i.store.Delete(ctx, codeKey(userID, purpose))
		_ = i.store.Delete(ctx, cooldownKey(userID, purpose))
		return nil, errors.Wrap(err, "gagal mengirim kode OTP")
	}
	metrics.OtpEvents.WithLabelValues(metrics.OtpSent).Inc()
	logger.WithField("sent_to", helpers.MaskPhone(phone)).Info("Kode OTP dikirim")
	return &SendResult{
		SentTo:    helpers.MaskPhone(phone),
		ExpiresIn: i.cfg.TTL,
	}, nil
}

func (i *impl) deliver(phone, message string) error {
	if i.sender == nil {
		return smtp.ErrNotConfigured
	}
	return i.sender.SendSMS(phone, message)
}

func (i *impl) Verify(ctx context.Context, userID, purpose, code, target string) error {
	if !IsCodeFormat(code) {
		return models.ValidationError("Kode OTP harus 6 digit angka")
	}
	var result error
	ok, err := lock.WithKey(ctx, codeKey(userID, purpose), 5*time.Second, func() error {
		result = i.verify(ctx, userID, purpose, code, target)
		return nil
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("verifikasi OTP sedang diproses")
	}
	return result
}

func (i *impl) verify(ctx context.Context, userID, purpose, code, target string) error {
	rec := record{}
	found, err := kvstore.GetJSON(ctx, i.store, codeKey(userID, purpose), &rec)
	if err != nil {
		return errors.Wrap(err, "gagal membaca kode OTP")
	}
	if !found {
		metrics.OtpEvents.WithLabelValues(metrics.OtpRejected).Inc()
		return models.ValidationError("Kode OTP kedaluwarsa atau belum dikirim")
	}
	attempts, err := i.store.Incr(ctx, attemptsKey(userID, purpose), i.cfg.TTL)
	if err != nil {
		return errors.Wrap(err, "gagal mencatat percobaan OTP")
	}
	if attempts > int64(i.cfg.MaxAttempts) {
		_ = i.Cancel(ctx, userID, purpose)
		metrics.OtpEvents.WithLabelValues(metrics.OtpRejected).Inc()
		return models.ValidationError("Terlalu banyak percobaan, silakan minta kode OTP baru")
	}
	if subtle.ConstantTimeCompare([]byte(rec.Code), []byte(code)) != 1 {
		metrics.OtpEvents.WithLabelValues(metrics.OtpRejected).Inc()
		left := int64(i.cfg.MaxAttempts) - attempts
		return models.ValidationError("Kode OTP salah, sisa percobaan: " + strconv.FormatInt(left, 10))
	}
	if rec.Target != target {
		metrics.OtpEvents.WithLabelValues(metrics.OtpRejected).Inc()
		return models.ValidationError("Kode OTP tidak berlaku untuk perubahan ini")
	}
	if err = i.Cancel(ctx, userID, purpose); err != nil {
		return err
	}
	metrics.OtpEvents.WithLabelValues(metrics.OtpVerified).Inc()
	return nil
}

func (i *impl) Cancel(ctx context.Context, userID, purpose string) error {
	if err := i.store.Delete(ctx, codeKey(userID, purpose)); err != nil {
		return errors.Wrap(err, "gagal menghapus kode OTP")
	}
	if err := i.store.Delete(ctx, attemptsKey(userID, purpose)); err != nil {
		return errors.Wrap(err, "gagal menghapus percobaan OTP")
	}
	return nil
}

func IsCodeFormat(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
