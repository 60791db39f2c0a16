package profileapimodels

import (
	"net/mail"
	"strings"

	usersapimodels "broilink-backend/models/api/users"

	"github.com/pkg/errors"
)

type ProfileView struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	OwnerName   string `json:"owner_name,omitempty"`
	FarmName    string `json:"farm_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	// ada perubahan nomor yang menunggu verifikasi OTP
	PendingPhone string `json:"pending_phone_number,omitempty"`
}

type ProfileEditData struct {
	Name string `json:"name"`
	// nil berarti email tersimpan dipertahankan
	Email       *string `json:"email,omitempty"`
	PhoneNumber string  `json:"phone_number"`
}

func (r ProfileEditData) Validate() error {
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*r.Email)); err != nil {
			return errors.New("format email tidak valid")
		}
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return errors.New("nomor telepon wajib diisi")
	}
	if !usersapimodels.IsPhoneNumber(r.PhoneNumber) {
		return errors.New("format nomor telepon tidak valid")
	}
	return nil
}

type ProfileUpdateResult struct {
	Profile     ProfileView `json:"profile"`
	OtpRequired bool        `json:"otp_required"`
	SentTo      string      `json:"sent_to,omitempty"` // nomor lama, disamarkan
	ExpiresIn   int         `json:"expires_in,omitempty"`
}

type OtpSendData struct {
	NewPhoneNumber string `json:"new_phone_number"`
}

func (r OtpSendData) Validate() error {
	if !usersapimodels.IsPhoneNumber(r.NewPhoneNumber) {
		return errors.New("format nomor telepon baru tidak valid")
	}
	return nil
}

type OtpVerifyData struct {
	Otp            string `json:"otp"`
	NewPhoneNumber string `json:"new_phone_number"`
}

func (r OtpVerifyData) Validate() error {
	otp := strings.TrimSpace(r.Otp)
	if len(otp) != 6 {
		return errors.New("kode OTP harus 6 digit")
	}
	for _, ch := range otp {
		if ch < '0' || ch > '9' {
			return errors.New("kode OTP harus 6 digit")
		}
	}
	if !usersapimodels.IsPhoneNumber(r.NewPhoneNumber) {
		return errors.New("format nomor telepon baru tidak valid")
	}
	return nil
}

type OtpSendResult struct {
	SentTo    string `json:"sent_to"`
	ExpiresIn int    `json:"expires_in"`
}
