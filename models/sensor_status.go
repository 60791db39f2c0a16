package models

type SensorStatus string

const (
	SensorStatusNormal  SensorStatus = "Normal"
	SensorStatusWarning SensorStatus = "Waspada"
	SensorStatusDanger  SensorStatus = "Bahaya"
	SensorStatusNoData  SensorStatus = "Tidak Ada Data"
)

var sensorStatusRank = map[SensorStatus]int{
	SensorStatusNoData:  0,
	SensorStatusNormal:  1,
	SensorStatusWarning: 2,
	SensorStatusDanger:  3,
}

// Worse mengembalikan status yang lebih parah dari keduanya
func (s SensorStatus) Worse(other SensorStatus) SensorStatus {
	if sensorStatusRank[other] > sensorStatusRank[s] {
		return other
	}
	return s
}
