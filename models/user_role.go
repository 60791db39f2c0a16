package models

type UserRole string

const (
	AdminRole    UserRole = "Admin"
	OwnerRole    UserRole = "Owner"
	PeternakRole UserRole = "Peternak"
	// GuestRole - pengaju permintaan tanpa akun
	GuestRole UserRole = "Guest"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Administrator",
	OwnerRole:    "Pemilik",
	PeternakRole: "Peternak",
	GuestRole:    "Tamu",
}

var roleDashboardPath = map[UserRole]string{
	AdminRole:    "/admin",
	OwnerRole:    "/owner",
	PeternakRole: "/peternak",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) DashboardPath() string {
	if path, exist := roleDashboardPath[r]; exist {
		return path
	}
	return "/"
}

// IsAccountRole peran yang dapat login ke sistem
func (r UserRole) IsAccountRole() bool {
	return r == AdminRole || r == OwnerRole || r == PeternakRole
}

type UserStatus string

const (
	UserActiveStatus   UserStatus = "active"
	UserInactiveStatus UserStatus = "inactive"
)

var userStatusHumanName = map[UserStatus]string{
	UserActiveStatus:   "Aktif",
	UserInactiveStatus: "Nonaktif",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

// ActivityWindowDays pengguna dianggap aktif bila login terakhir masih dalam rentang ini
const ActivityWindowDays = 30

const SystemUser = "Sistem"
