package dashboardapimodels

import (
	"broilink-backend/models"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	reportsapimodels "broilink-backend/models/api/reports"
	requestsapimodels "broilink-backend/models/api/requests"
)

type AdminDashboard struct {
	TotalOwners     int64                           `json:"total_owners"`
	TotalPeternak   int64                           `json:"total_peternak"`
	TotalFarms      int64                           `json:"total_farms"`
	PendingRequests int64                           `json:"pending_requests"`
	RecentRequests  []requestsapimodels.RequestView `json:"recent_requests"`
}

type FarmSummary struct {
	FarmID       string                           `json:"farm_id"`
	FarmName     string                           `json:"farm_name"`
	Location     string                           `json:"location"`
	PeternakName string                           `json:"peternak_name,omitempty"`
	Status       models.SensorStatus              `json:"status"`
	Current      *monitoringapimodels.ReadingView `json:"current"`
}

type OwnerDashboard struct {
	TotalFarms       int                                 `json:"total_farms"`
	TotalPeternak    int                                 `json:"total_peternak"`
	FarmsInDanger    int                                 `json:"farms_in_danger"`
	Farms            []FarmSummary                       `json:"farms"`
	RecentActivities []reportsapimodels.ManualReportView `json:"recent_activities"`
}

type PeternakDashboard struct {
	Farm    *FarmSummary                      `json:"farm"`
	Summary reportsapimodels.WeeklySummary    `json:"summary"`
	Series  []monitoringapimodels.ManualPoint `json:"series"`
}
