package rbac

import (
	"broilink-backend/models"
)

var (
	AdminRoleSet    = []models.UserRole{models.AdminRole}
	OwnerRoleSet    = []models.UserRole{models.OwnerRole}
	PeternakRoleSet = []models.UserRole{models.PeternakRole}
	AccountRoles    = []models.UserRole{models.AdminRole, models.OwnerRole, models.PeternakRole}
)

func (i *impl) initRules() {
	i.adminRbac()
	i.ownerRbac()
	i.peternakRbac()
	i.commonRbac()
}

func (i *impl) adminRbac() {
	i.RegisterRule(models.DashboardModule, models.ViewPermission, AdminRoleSet, "/api/admin/dashboard [get]", nil)
	// USERS
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/admin/users [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/admin/users/{id} [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/admin/owners [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/admin/peternaks/{ownerId} [get]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/admin/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/admin/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/admin/users/{id} [delete]", nil)
	// FARMS
	i.RegisterRule(models.FarmsModule, models.ViewPermission, AdminRoleSet, "/api/admin/farms [get]", nil)
	i.RegisterRule(models.FarmsModule, models.ManagePermission, AdminRoleSet, "/api/admin/farms [post]", nil)
	i.RegisterRule(models.FarmsModule, models.ManagePermission, AdminRoleSet, "/api/admin/farms/{id} [put]", nil)
	i.RegisterRule(models.FarmsModule, models.ManagePermission, AdminRoleSet, "/api/admin/farms/{id} [delete]", nil)
	i.RegisterRule(models.FarmsModule, models.ManagePermission, AdminRoleSet, "/api/admin/farms/{id}/assign-peternak [put]", nil)
	// FARM_CONFIG
	i.RegisterRule(models.FarmConfigModule, models.ViewPermission, AdminRoleSet, "/api/admin/farms/{id}/config [get]", nil)
	i.RegisterRule(models.FarmConfigModule, models.EditPermission, AdminRoleSet, "/api/admin/farms/{id}/config [put]", nil)
	i.RegisterRule(models.FarmConfigModule, models.EditPermission, AdminRoleSet, "/api/admin/farms/{id}/config/reset [post]", nil)
	// REQUESTS
	i.RegisterRule(models.RequestsModule, models.ViewPermission, AdminRoleSet, "/api/admin/requests [get]", nil)
	i.RegisterRule(models.RequestsModule, models.ViewPermission, AdminRoleSet, "/api/admin/requests/{id} [get]", nil)
	i.RegisterRule(models.RequestsModule, models.FlowPermission, AdminRoleSet, "/api/admin/requests/{id}/status [put]", nil)
}

func (i *impl) ownerRbac() {
	i.RegisterRule(models.DashboardModule, models.ViewPermission, OwnerRoleSet, "/api/owner/dashboard [get]", nil)
	i.RegisterRule(models.MonitoringModule, models.ViewPermission, OwnerRoleSet, "/api/owner/monitoring/{farmId} [get]", nil)
	i.RegisterRule(models.AnalyticsModule, models.ViewPermission, OwnerRoleSet, "/api/owner/analytics/{farmId} [get]", nil)
	i.RegisterRule(models.ReportsModule, models.ExportPermission, OwnerRoleSet, "/api/owner/export/{farmId} [get]", nil)
	i.RegisterRule(models.RequestsModule, models.CreatePermission, OwnerRoleSet, "/api/owner/request-farm [post]", nil)
	i.RegisterRule(models.RequestsModule, models.CreatePermission, OwnerRoleSet, "/api/owner/request-peternak [post]", nil)
	i.RegisterRule(models.RequestsModule, models.CreatePermission, OwnerRoleSet, "/api/owner/requests [post]", nil)
	i.RegisterRule(models.RequestsModule, models.ViewPermission, OwnerRoleSet, "/api/owner/requests [get]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, OwnerRoleSet, "/api/owner/profile [get]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, OwnerRoleSet, "/api/owner/profile [put]", nil)
}

func (i *impl) peternakRbac() {
	i.RegisterRule(models.DashboardModule, models.ViewPermission, PeternakRoleSet, "/api/peternak/dashboard [get]", nil)
	// REPORTS
	i.RegisterRule(models.ReportsModule, models.CreatePermission, PeternakRoleSet, "/api/peternak/reports [post]", nil)
	i.RegisterRule(models.ReportsModule, models.CreatePermission, PeternakRoleSet, "/api/peternak/manual-data [post]", nil)
	i.RegisterRule(models.ReportsModule, models.EditPermission, PeternakRoleSet, "/api/peternak/reports/{id} [put]", nil)
	i.RegisterRule(models.ReportsModule, models.ViewPermission, PeternakRoleSet, "/api/peternak/reports [get]", nil)
	i.RegisterRule(models.ReportsModule, models.ViewPermission, PeternakRoleSet, "/api/peternak/reports/date/{date} [get]", nil)
	// REQUESTS
	i.RegisterRule(models.RequestsModule, models.CreatePermission, PeternakRoleSet, "/api/peternak/requests [post]", nil)
	// PROFILE
	i.RegisterRule(models.ProfileModule, models.ViewPermission, PeternakRoleSet, "/api/peternak/profile [get]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, PeternakRoleSet, "/api/peternak/profile [put]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, PeternakRoleSet, "/api/peternak/otp/send [post]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, PeternakRoleSet, "/api/peternak/otp/verify [post]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, PeternakRoleSet, "/api/peternak/profile/photo [post]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, PeternakRoleSet, "/api/peternak/profile/photo [get]", nil)
}

func (i *impl) commonRbac() {
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AccountRoles, "/api/me [get]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AccountRoles, "/api/logout [post]", nil)
}
