package dbmodels

import "time"

type Farm struct {
	BaseModel
	OwnerID           string  `gorm:"type:varchar(36);index"`
	Owner             *User   `gorm:"foreignKey:OwnerID"`
	PeternakID        *string `gorm:"type:varchar(36);index"`
	Peternak          *User   `gorm:"foreignKey:PeternakID"`
	FarmName          string  `gorm:"type:varchar(255)"`
	Location          string  `gorm:"type:varchar(255)"`
	InitialPopulation int
	InitialWeight     float64
	FarmArea          float64
}

// FarmConfigValue - nilai ambang per kandang (EAV)
type FarmConfigValue struct {
	FarmID    string `gorm:"primaryKey;type:varchar(36)"`
	ParamKey  string `gorm:"primaryKey;type:varchar(64)"`
	Value     float64
	UpdatedAt time.Time
}

// FarmConfigDefault - snapshot dari penyimpanan pertama, tidak pernah ditimpa
type FarmConfigDefault struct {
	FarmID    string `gorm:"primaryKey;type:varchar(36)"`
	ParamKey  string `gorm:"primaryKey;type:varchar(64)"`
	Value     float64
	CreatedAt time.Time
}
