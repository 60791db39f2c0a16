package dbmodels

import (
	"time"

	"broilink-backend/models"
)

type User struct {
	BaseModel
	Username     string            `gorm:"type:varchar(100);uniqueIndex"`
	Name         string            `gorm:"type:varchar(255)"`
	Email        string            `gorm:"type:varchar(255)"`
	PhoneNumber  string            `gorm:"type:varchar(30)"`
	Password     string            `gorm:"type:varchar(255)"`
	Role         models.UserRole   `gorm:"type:varchar(20);index"`
	Status       models.UserStatus `gorm:"type:varchar(20)"`
	OwnerID      *string           `gorm:"type:varchar(36);index"`
	Owner        *User             `gorm:"foreignKey:OwnerID"`
	LastLogin    *time.Time
	ProfilePhoto string `gorm:"type:varchar(255)"`
}

func (r User) IsActive() bool {
	return r.Status != models.UserInactiveStatus
}

// IsRecentlyActive - login terakhir dalam models.ActivityWindowDays hari
func (r User) IsRecentlyActive(now time.Time) bool {
	if r.LastLogin == nil {
		return false
	}
	return !r.LastLogin.Before(now.AddDate(0, 0, -models.ActivityWindowDays))
}
