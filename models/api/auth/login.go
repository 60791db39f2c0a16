package authapimodels

import (
	"strings"

	"broilink-backend/models"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username wajib diisi")
	}
	if r.Password == "" {
		return errors.New("password wajib diisi")
	}
	return nil
}

type UserView struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	OwnerID     string          `json:"owner_id,omitempty"`
}

type LoginResponse struct {
	User          UserView `json:"user"`
	Token         string   `json:"token"`
	ExpiresAt     int64    `json:"expires_at"`
	DashboardPath string   `json:"dashboard_path"`
}

type MeResponse struct {
	User        UserView                              `json:"user"`
	Permissions map[models.Module][]models.Permission `json:"permissions"`
}
