package requestsapimodels

import (
	"encoding/json"
	"strconv"
	"strings"

	"broilink-backend/models"
	apimodels "broilink-backend/models/api"
	usersapimodels "broilink-backend/models/api/users"

	"github.com/pkg/errors"
)

// RawRequestPayload - semua bentuk body yang pernah dikirim dashboard untuk membuat permintaan.
// Alias:
//   - type / request_type            -> RequestCreate.RequestType
//   - detail / request_content       -> RequestCreate.Detail
//   - phone / whatsapp / phone_number -> RequestCreate.Phone
//   - name / user.name               -> RequestCreate.Name
type RawRequestPayload struct {
	Type           string `json:"type"`
	RequestType    string `json:"request_type"`
	Detail         string `json:"detail"`
	RequestContent string `json:"request_content"`
	Name           string `json:"name"`
	User           *struct {
		Name string `json:"name"`
	} `json:"user"`
	Phone       string `json:"phone"`
	Whatsapp    string `json:"whatsapp"`
	PhoneNumber string `json:"phone_number"`
}

// RequestCreate - satu-satunya bentuk internal untuk membuat permintaan
type RequestCreate struct {
	Name        string
	Phone       string
	RequestType string
	Detail      string
	Payload     interface{}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

// Normalize memetakan alias ke RequestCreate. Nama dan kontak divalidasi oleh pemanggil,
// karena untuk pengguna yang login keduanya diambil dari profil.
func Normalize(raw RawRequestPayload) RequestCreate {
	userName := ""
	if raw.User != nil {
		userName = raw.User.Name
	}
	return RequestCreate{
		Name:        firstNonEmpty(raw.Name, userName),
		Phone:       firstNonEmpty(raw.Phone, raw.Whatsapp, raw.PhoneNumber),
		RequestType: firstNonEmpty(raw.RequestType, raw.Type),
		Detail:      firstNonEmpty(raw.Detail, raw.RequestContent),
	}
}

func (r RequestCreate) Validate() error {
	if r.RequestType == "" {
		return errors.New("jenis permintaan wajib diisi")
	}
	if r.Detail == "" {
		return errors.New("detail permintaan wajib diisi")
	}
	return nil
}

// ValidateGuest - tamu tidak punya profil, nama dan kontak wajib
func (r RequestCreate) ValidateGuest() error {
	if r.Name == "" {
		return errors.New("nama wajib diisi")
	}
	if r.Phone == "" {
		return errors.New("nomor WhatsApp wajib diisi")
	}
	if !usersapimodels.IsPhoneNumber(r.Phone) {
		return errors.New("format nomor WhatsApp tidak valid")
	}
	return r.Validate()
}

// FarmRequestData - "Tambah Kandang". Form dashboard mengirim farmName/farmArea.
type FarmRequestData struct {
	Type          string            `json:"type"`
	FarmName      string            `json:"farm_name"`
	FarmArea      apimodels.Number  `json:"farm_area"`
	Location      string            `json:"location"`
	PeternakID    string            `json:"peternak_id"`
	PeternakName  string            `json:"peternak_name"`
	FarmNameAlias string            `json:"farmName,omitempty"`
	FarmAreaAlias *apimodels.Number `json:"farmArea,omitempty"`
}

func (r FarmRequestData) Normalize() FarmRequestData {
	if strings.TrimSpace(r.FarmName) == "" {
		r.FarmName = r.FarmNameAlias
	}
	if !r.FarmArea.IsSet() && r.FarmAreaAlias != nil {
		r.FarmArea = *r.FarmAreaAlias
	}
	r.FarmNameAlias = ""
	r.FarmAreaAlias = nil
	return r
}

func (r FarmRequestData) Validate() error {
	if strings.TrimSpace(r.FarmName) == "" {
		return errors.New("nama kandang wajib diisi")
	}
	if err := r.FarmArea.CheckRequired("luas kandang"); err != nil {
		return err
	}
	if r.FarmArea.Float() <= 0 {
		return errors.New("luas kandang harus lebih dari 0")
	}
	return nil
}

func (r FarmRequestData) ToCreate() RequestCreate {
	detail := "Nama Kandang: " + strings.TrimSpace(r.FarmName) +
		"; Luas: " + formatNumber(r.FarmArea.Float()) + " m2"
	if r.Location != "" {
		detail += "; Lokasi: " + strings.TrimSpace(r.Location)
	}
	if r.PeternakName != "" {
		detail += "; Peternak: " + strings.TrimSpace(r.PeternakName)
	}
	return RequestCreate{
		RequestType: models.RequestTypeAddFarm,
		Detail:      detail,
		Payload:     r,
	}
}

// PeternakRequestData - "Tambah Peternak"
type PeternakRequestData struct {
	Type               string `json:"type"`
	PeternakName       string `json:"peternak_name"`
	PeternakPhone      string `json:"peternak_phone"`
	FarmID             string `json:"farm_id"`
	PeternakNameAlias  string `json:"peternakName,omitempty"`
	PeternakPhoneAlias string `json:"peternakPhone,omitempty"`
}

func (r PeternakRequestData) Normalize() PeternakRequestData {
	r.PeternakName = firstNonEmpty(r.PeternakName, r.PeternakNameAlias)
	r.PeternakPhone = firstNonEmpty(r.PeternakPhone, r.PeternakPhoneAlias)
	r.PeternakNameAlias = ""
	r.PeternakPhoneAlias = ""
	return r
}

func (r PeternakRequestData) Validate() error {
	if strings.TrimSpace(r.PeternakName) == "" {
		return errors.New("nama peternak wajib diisi")
	}
	if strings.TrimSpace(r.PeternakPhone) == "" {
		return errors.New("nomor telepon peternak wajib diisi")
	}
	if !usersapimodels.IsPhoneNumber(r.PeternakPhone) {
		return errors.New("format nomor telepon peternak tidak valid")
	}
	return nil
}

func (r PeternakRequestData) ToCreate() RequestCreate {
	return RequestCreate{
		RequestType: models.RequestTypeAddPeternak,
		Detail:      "Nama Peternak: " + strings.TrimSpace(r.PeternakName) + "; Telepon: " + usersapimodels.NormalizePhone(r.PeternakPhone),
		Payload:     r,
	}
}

type StatusUpdateData struct {
	Status string `json:"status"`
}

func (r StatusUpdateData) Validate() error {
	if _, ok := models.ParseRequestStatus(r.Status); !ok {
		return errors.New("status tidak dikenal, gunakan menunggu, diproses, selesai atau ditolak")
	}
	return nil
}

type ListFilter struct {
	Sort string `query:"sort"` // newest | oldest
	Page int    `query:"page"`
}

type RequesterView struct {
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name"`
	Role  models.UserRole `json:"role"`
	Phone string          `json:"phone"`
}

type StatusOption struct {
	Value models.RequestStatus `json:"value"`
	Label string               `json:"label"`
	Color string               `json:"color"`
}

type StatusLogView struct {
	FromStatus models.RequestStatus `json:"from_status"`
	ToStatus   models.RequestStatus `json:"to_status"`
	ChangedBy  string               `json:"changed_by"`
	ChangedAt  string               `json:"changed_at"`
}

type RequestView struct {
	ID          string               `json:"id"`
	Requester   RequesterView        `json:"requester"`
	RequestType string               `json:"request_type"`
	Detail      string               `json:"detail"`
	Status      models.RequestStatus `json:"status"`
	StatusLabel string               `json:"status_label"`
	StatusColor string               `json:"status_color"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

type RequestDetailView struct {
	RequestView
	Payload       json.RawMessage `json:"payload,omitempty"`
	StatusOptions []StatusOption  `json:"status_options"`
	StatusHistory []StatusLogView `json:"status_history"`
}

type RequestListResponse struct {
	Requests   []RequestView `json:"requests"`
	Sort       string        `json:"sort"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
}

func StatusOptions() []StatusOption {
	result := make([]StatusOption, 0, len(models.RequestStatusList))
	for _, status := range models.RequestStatusList {
		result = append(result, StatusOption{
			Value: status,
			Label: status.ToHuman(),
			Color: status.Color(),
		})
	}
	return result
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
