package dbmodels

import "time"

type SensorReading struct {
	BaseModel
	FarmID      string `gorm:"type:varchar(36);index:idx_sensor_farm_time"`
	Temperature float64
	Humidity    float64
	Ammonia     float64
	RecordedAt  time.Time `gorm:"index:idx_sensor_farm_time"`
}
