package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	DashboardModule  Module = "DASHBOARD"
	UsersModule      Module = "USERS"
	FarmsModule      Module = "FARMS"
	FarmConfigModule Module = "FARM_CONFIG"
	RequestsModule   Module = "REQUESTS"
	MonitoringModule Module = "MONITORING"
	AnalyticsModule  Module = "ANALYTICS"
	ReportsModule    Module = "REPORTS"
	ProfileModule    Module = "PROFILE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	ExportPermission Permission = "EXPORT"
)
