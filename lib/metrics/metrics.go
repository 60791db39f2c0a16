package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broilink_request_status_changes_total",
		Help: "Jumlah perubahan status permintaan",
	}, []string{"from", "to"})

	RequestsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broilink_requests_created_total",
		Help: "Jumlah permintaan yang dibuat per peran pengirim",
	}, []string{"role"})

	OtpEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broilink_otp_events_total",
		Help: "Jumlah OTP yang dikirim dan diverifikasi",
	}, []string{"event"})

	ManualReports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broilink_manual_reports_total",
		Help: "Jumlah laporan harian yang dibuat atau diubah",
	}, []string{"action"})

	SensorReadings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "broilink_sensor_readings_total",
		Help: "Jumlah data sensor yang diterima",
	})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broilink_exports_total",
		Help: "Jumlah ekspor laporan per format",
	}, []string{"format"})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broilink_logins_total",
		Help: "Jumlah percobaan login",
	}, []string{"result"})
)

const (
	OtpSent       = "sent"
	OtpVerified   = "verified"
	OtpRejected   = "rejected"
	OtpCooldown   = "cooldown"
	LoginSuccess  = "success"
	LoginFailed   = "failed"
	ReportCreated = "created"
	ReportUpdated = "updated"
)
