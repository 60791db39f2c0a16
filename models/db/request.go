package dbmodels

import (
	"time"

	"broilink-backend/models"
)

type Request struct {
	BaseModel
	RequesterID    *string              `gorm:"type:varchar(36);index"`
	RequesterName  string               `gorm:"type:varchar(255)"`
	RequesterRole  models.UserRole      `gorm:"type:varchar(20)"`
	RequesterPhone string               `gorm:"type:varchar(30)"`
	RequestType    string               `gorm:"type:varchar(100)"`
	Detail         string               `gorm:"type:text"`
	Payload        string               `gorm:"type:text"`
	Status         models.RequestStatus `gorm:"type:varchar(20);index"`
	StatusLogs     []RequestStatusLog   `gorm:"foreignKey:RequestID"`
}

type RequestStatusLog struct {
	BaseModel
	RequestID  string               `gorm:"type:varchar(36);index"`
	FromStatus models.RequestStatus `gorm:"type:varchar(20)"`
	ToStatus   models.RequestStatus `gorm:"type:varchar(20)"`
	ChangedBy  string               `gorm:"type:varchar(36)"`
	ChangedAt  time.Time
}
