package dbmodels

type ManualReport struct {
	BaseModel
	FarmID         string   `gorm:"type:varchar(36);uniqueIndex:idx_manual_report_farm_date"`
	PeternakID     string   `gorm:"type:varchar(36);index"`
	ReportDate     string   `gorm:"type:varchar(10);uniqueIndex:idx_manual_report_farm_date"` // YYYY-MM-DD
	KonsumsiPakan  float64  // kg
	KonsumsiAir    float64  // liter
	RataRataBobot  *float64 // kg, opsional
	JumlahKematian int      // ekor
}
