package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"broilink-backend/models"

	"github.com/pkg/errors"
)

// Request - satu bentuk permintaan untuk semua variasi respons server
type Request struct {
	ID          string
	Name        string
	Role        string
	Phone       string
	Type        string
	Detail      string
	Status      models.RequestStatus
	StatusLabel string
	StatusColor string
	CreatedAt   string
	UpdatedAt   string
}

type roleField string

// role bisa berupa string atau {name}
func (r *roleField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = roleField(obj.Name)
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*r = roleField(value)
	return nil
}

// id bisa berupa string atau angka
type idField string

func (r *idField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*r = idField(value)
		return nil
	}
	*r = idField(data)
	return nil
}

type rawRequest struct {
	ID        idField   `json:"id"`
	Name      string    `json:"name"`
	Role      roleField `json:"role"`
	Phone     string    `json:"phone"`
	Whatsapp  string    `json:"whatsapp"`
	Type      string    `json:"type"`
	ReqType   string    `json:"request_type"`
	Detail    string    `json:"detail"`
	Content   string    `json:"request_content"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	User      *struct {
		Name  string    `json:"name"`
		Role  roleField `json:"role"`
		Phone string    `json:"phone"`
	} `json:"user"`
	Requester *struct {
		Name  string `json:"name"`
		Role  string `json:"role"`
		Phone string `json:"phone"`
	} `json:"requester"`
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

func normalizeRequest(data json.RawMessage) (Request, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return Request{}, errors.Wrap(err, "format permintaan tidak dikenal")
	}
	result := Request{
		ID:        string(raw.ID),
		Name:      raw.Name,
		Role:      string(raw.Role),
		Phone:     firstNonEmpty(raw.Phone, raw.Whatsapp),
		Type:      firstNonEmpty(raw.ReqType, raw.Type),
		Detail:    firstNonEmpty(raw.Detail, raw.Content),
		Status:    models.RequestStatus(raw.Status),
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
	if raw.User != nil {
		result.Name = firstNonEmpty(result.Name, raw.User.Name)
		result.Role = firstNonEmpty(result.Role, string(raw.User.Role))
		result.Phone = firstNonEmpty(result.Phone, raw.User.Phone)
	}
	if raw.Requester != nil {
		result.Name = firstNonEmpty(raw.Requester.Name, result.Name)
		result.Role = firstNonEmpty(raw.Requester.Role, result.Role)
		result.Phone = firstNonEmpty(raw.Requester.Phone, result.Phone)
	}
	// status tak dikenal tetap ditampilkan, warnanya abu-abu
	result.StatusLabel = result.Status.ToHuman()
	result.StatusColor = result.Status.Color()
	return result, nil
}

// normalizeRequests - {requests:[...]}, [...] atau satu objek
func normalizeRequests(data json.RawMessage) ([]Request, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return []Request{}, nil
	}
	var items []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, errors.Wrap(err, "format daftar permintaan tidak dikenal")
		}
	case '{':
		var wrapper struct {
			Requests *[]json.RawMessage `json:"requests"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, errors.Wrap(err, "format daftar permintaan tidak dikenal")
		}
		if wrapper.Requests != nil {
			items = *wrapper.Requests
		} else {
			items = []json.RawMessage{data}
		}
	default:
		return nil, errors.New("format daftar permintaan tidak dikenal")
	}
	result := make([]Request, 0, len(items))
	for _, item := range items {
		rec, err := normalizeRequest(item)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, nil
}

type RequestPage struct {
	Requests   []Request
	Page       int
	TotalPages int
	Total      int64
}

// ListRequests - riwayat permintaan admin, sort newest|oldest
func (c *Client) ListRequests(ctx context.Context, sort string, page int) (*RequestPage, error) {
	query := url.Values{}
	if sort != "" {
		query.Set("sort", sort)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	var data json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/admin/requests", query, nil, &data); err != nil {
		return nil, err
	}
	list, err := normalizeRequests(data)
	if err != nil {
		return nil, err
	}
	result := &RequestPage{Requests: list, Page: 1, TotalPages: 1, Total: int64(len(list))}
	var meta struct {
		Page       *int   `json:"page"`
		TotalPages *int   `json:"total_pages"`
		Total      *int64 `json:"total"`
	}
	if len(data) > 0 && data[0] == '{' && json.Unmarshal(data, &meta) == nil {
		if meta.Page != nil {
			result.Page = *meta.Page
		}
		if meta.TotalPages != nil {
			result.TotalPages = *meta.TotalPages
		}
		if meta.Total != nil {
			result.Total = *meta.Total
		}
	}
	return result, nil
}

func (c *Client) GetRequest(ctx context.Context, id string) (*Request, error) {
	return c.requestCall(ctx, http.MethodGet, "/api/admin/requests/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*Request, error) {
	return c.requestCall(ctx, http.MethodPut, "/api/admin/requests/"+url.PathEscape(id)+"/status",
		map[string]string{"status": string(status)})
}

type GuestRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	RequestType string `json:"request_type"`
	Detail      string `json:"detail"`
}

// SubmitGuestRequest - tanpa login
func (c *Client) SubmitGuestRequest(ctx context.Context, payload GuestRequest) (*Request, error) {
	return c.requestCall(ctx, http.MethodPost, "/api/requests/submit", payload)
}

type FarmRequest struct {
	FarmName string  `json:"farm_name"`
	FarmArea float64 `json:"farm_area"`
	Location string  `json:"location,omitempty"`
}

func (c *Client) RequestFarm(ctx context.Context, payload FarmRequest) (*Request, error) {
	return c.requestCall(ctx, http.MethodPost, "/api/owner/request-farm", payload)
}

type PeternakRequest struct {
	PeternakName  string `json:"peternak_name"`
	PeternakPhone string `json:"peternak_phone"`
	FarmID        string `json:"farm_id,omitempty"`
}

func (c *Client) RequestPeternak(ctx context.Context, payload PeternakRequest) (*Request, error) {
	return c.requestCall(ctx, http.MethodPost, "/api/owner/request-peternak", payload)
}

// CreateRequest - permintaan bebas, jalur dipilih dari peran sesi aktif
func (c *Client) CreateRequest(ctx context.Context, requestType, detail string) (*Request, error) {
	prefix, err := c.rolePrefix()
	if err != nil {
		return nil, err
	}
	return c.requestCall(ctx, http.MethodPost, prefix+"/requests", map[string]string{
		"request_type": requestType,
		"detail":       detail,
	})
}

func (c *Client) requestCall(ctx context.Context, method, path string, in interface{}) (*Request, error) {
	var data json.RawMessage
	if err := c.do(ctx, method, path, nil, in, &data); err != nil {
		return nil, err
	}
	rec, err := normalizeRequest(data)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
