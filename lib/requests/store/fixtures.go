package requestsstore

import (
	"time"

	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"
)

// FixtureRequests - data contoh yang sama dengan tampilan riwayat laporan di dashboard
func FixtureRequests() []dbmodels.Request {
	item := func(name string, role models.UserRole, phone, requestType, createdAt string, status models.RequestStatus) dbmodels.Request {
		created, _ := time.Parse(time.RFC3339, createdAt)
		return dbmodels.Request{
			BaseModel: dbmodels.BaseModel{
				CreatedAt: created,
				UpdatedAt: created,
			},
			RequesterName:  name,
			RequesterRole:  role,
			RequesterPhone: phone,
			RequestType:    requestType,
			Detail:         requestType,
			Status:         status,
		}
	}
	return []dbmodels.Request{
		item("Budi Santoso", models.OwnerRole, "+62812-3456-7890", "Permintaan reset password", "2025-11-20T14:30:00Z", models.RequestStatusPending),
		item("Siti Aminah", models.PeternakRole, "+62813-9876-5432", "Laporan error sistem", "2025-11-20T11:15:00Z", models.RequestStatusInProgress),
		item("Andi Wijaya", models.OwnerRole, "+62815-2468-1357", "Permintaan akses kandang baru", "2025-11-19T09:45:00Z", models.RequestStatusDone),
		item("Dewi Lestari", models.PeternakRole, "+62817-5555-8888", "Pertanyaan teknis", "2025-11-18T16:20:00Z", models.RequestStatusDone),
		item("Rudi Hartono", models.GuestRole, "+62819-1111-2222", "Masalah login", "2025-11-18T10:00:00Z", models.RequestStatusRejected),
	}
}
