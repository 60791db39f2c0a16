package usersapimodels

import (
	"net/mail"
	"strings"

	"broilink-backend/models"
	apimodels "broilink-backend/models/api"

	"github.com/pkg/errors"
)

type UserFilter struct {
	Search string `query:"search"`
	Role   string `query:"role"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

func (r UserFilter) Validate() error {
	if r.Role == "" {
		return nil
	}
	role := models.UserRole(r.Role)
	if role != models.OwnerRole && role != models.PeternakRole {
		return errors.New("role tidak dikenal")
	}
	return nil
}

type UserData struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number"`
	Status      string           `json:"status"`
	OwnerID     string           `json:"owner_id"`  // wajib untuk Peternak
	FarmName    string           `json:"farm_name"` // Owner: kandang pertama dibuat sekaligus
	FarmArea    apimodels.Number `json:"farm_area"` // Owner: luas kandang pertama (m2)
	Location    string           `json:"location"`  // Owner: lokasi kandang pertama
	Password    string           `json:"password"`  // pada edit: kosong = tidak diubah
}

type UserCreateData struct {
	UserData
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

func (r UserData) validateCommon() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("nama wajib diisi")
	}
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			return errors.New("format email tidak valid")
		}
	}
	if r.PhoneNumber != "" && !IsPhoneNumber(r.PhoneNumber) {
		return errors.New("format nomor telepon tidak valid")
	}
	if err := r.FarmArea.CheckOptional("luas kandang"); err != nil {
		return err
	}
	if r.Status != "" && models.UserStatus(r.Status) != models.UserActiveStatus && models.UserStatus(r.Status) != models.UserInactiveStatus {
		return errors.New("status tidak dikenal")
	}
	return nil
}

func (r UserCreateData) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username wajib diisi")
	}
	if strings.ContainsAny(r.Username, " \t") {
		return errors.New("username tidak boleh mengandung spasi")
	}
	if len(r.Password) < 6 {
		return errors.New("password minimal 6 karakter")
	}
	switch r.Role {
	case models.OwnerRole:
	case models.PeternakRole:
		if r.OwnerID == "" {
			return errors.New("owner wajib dipilih untuk peternak")
		}
	default:
		return errors.New("role harus Owner atau Peternak")
	}
	return r.validateCommon()
}

type UserEditData struct {
	UserData
}

func (r UserEditData) Validate() error {
	if r.Password != "" && len(r.Password) < 6 {
		return errors.New("password minimal 6 karakter")
	}
	return r.validateCommon()
}

type UserView struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	Status      string          `json:"status"`    // aktif/nonaktif menurut login terakhir
	IsActive    bool            `json:"is_active"` // status akun yang diatur admin
	OwnerID     string          `json:"owner_id,omitempty"`
	OwnerName   string          `json:"owner_name,omitempty"`
	LastLogin   string          `json:"last_login,omitempty"`
	DateJoined  string          `json:"date_joined"`
}

type UserStats struct {
	Total    int64 `json:"total"`
	Owner    int64 `json:"owner"`
	Peternak int64 `json:"peternak"`
}

type UserListResponse struct {
	Users      []UserView `json:"users"`
	Stats      UserStats  `json:"stats"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int64      `json:"total"`
}

type ShortUserView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
