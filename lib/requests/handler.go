package requestshandler

import (
	"encoding/json"
	"time"

	"broilink-backend/config"
	"broilink-backend/db"
	"broilink-backend/lib/metrics"
	requestsstore "broilink-backend/lib/requests/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"
	requestsapimodels "broilink-backend/models/api/requests"
	usersapimodels "broilink-backend/models/api/users"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// CreateForUser - nama dan kontak pengirim diambil dari profil pengguna
	CreateForUser(userID string, data requestsapimodels.RequestCreate) (*requestsapimodels.RequestView, error)
	CreateGuest(data requestsapimodels.RequestCreate) (*requestsapimodels.RequestView, error)
	List(filter requestsapimodels.ListFilter) (*requestsapimodels.RequestListResponse, error)
	Get(id string) (*requestsapimodels.RequestDetailView, error)
	UpdateStatus(id string, data requestsapimodels.StatusUpdateData, changedBy string) (*requestsapimodels.RequestDetailView, error)
	ListOwn(userID string) ([]requestsapimodels.RequestView, error)
	Recent(limit int) ([]requestsapimodels.RequestView, error)
	CountPending() (int64, error)
}

var Instance Provider

func NewHandler() {
	var store requestsstore.Provider
	if config.Conf.IsFixtureMode() {
		store = requestsstore.NewMemoryInstance(requestsstore.FixtureRequests()...)
		log.Info("permintaan disajikan dari data fixture")
	} else {
		store = requestsstore.NewInstance(db.DB)
	}
	Instance = NewInstance(store, usersstore.NewInstance(db.DB), config.Conf.Requests.PageSize)
}

func NewInstance(store requestsstore.Provider, userStore usersstore.Provider, pageSize int) Provider {
	if pageSize <= 0 {
		pageSize = 6
	}
	return impl{
		store:     store,
		userStore: userStore,
		pageSize:  pageSize,
		now:       time.Now,
	}
}

type impl struct {
	store     requestsstore.Provider
	userStore usersstore.Provider
	pageSize  int
	now       func() time.Time
}

func (i impl) CreateForUser(userID string, data requestsapimodels.RequestCreate) (*requestsapimodels.RequestView, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.UnauthorizedError("Sesi berakhir, silakan login kembali")
	}
	rec := dbmodels.Request{
		RequesterID:    helpers.StringPtr(user.ID),
		RequesterName:  user.Name,
		RequesterRole:  user.Role,
		RequesterPhone: user.PhoneNumber,
	}
	return i.create(rec, data)
}

func (i impl) CreateGuest(data requestsapimodels.RequestCreate) (*requestsapimodels.RequestView, error) {
	rec := dbmodels.Request{
		RequesterName:  data.Name,
		RequesterRole:  models.GuestRole,
		RequesterPhone: usersapimodels.NormalizePhone(data.Phone),
	}
	return i.create(rec, data)
}

func (i impl) create(rec dbmodels.Request, data requestsapimodels.RequestCreate) (*requestsapimodels.RequestView, error) {
	rec.RequestType = data.RequestType
	rec.Detail = data.Detail
	rec.Status = models.RequestStatusPending
	rec.CreatedAt = i.now()
	rec.UpdatedAt = rec.CreatedAt
	if data.Payload != nil {
		body, err := json.Marshal(data.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "gagal menyimpan isi permintaan")
		}
		rec.Payload = string(body)
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	metrics.RequestsCreated.WithLabelValues(string(rec.RequesterRole)).Inc()
	log.WithFields(log.Fields{
		"request_id":   id,
		"request_type": rec.RequestType,
		"role":         rec.RequesterRole,
	}).Info("permintaan baru dibuat")
	view := ToView(rec)
	return &view, nil
}

func (i impl) List(filter requestsapimodels.ListFilter) (*requestsapimodels.RequestListResponse, error) {
	sort := requestsstore.ParseSort(filter.Sort)
	page := filter.Page
	if page < 1 {
		page = 1
	}
	list, rowCount, err := i.store.List(requestsstore.ListFilter{
		Sort:  sort,
		Page:  page,
		Limit: i.pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &requestsapimodels.RequestListResponse{
		Requests:   ToViews(list),
		Sort:       string(sort),
		Page:       page,
		PageSize:   i.pageSize,
		Total:      rowCount,
		TotalPages: apimodels.TotalPages(rowCount, i.pageSize),
	}, nil
}

func (i impl) Get(id string) (*requestsapimodels.RequestDetailView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFoundError("Permintaan tidak ditemukan")
	}
	return ToDetailView(*rec), nil
}

func (i impl) UpdateStatus(id string, data requestsapimodels.StatusUpdateData, changedBy string) (*requestsapimodels.RequestDetailView, error) {
	status, ok := models.ParseRequestStatus(data.Status)
	if !ok {
		return nil, models.ValidationError("Status tidak dikenal")
	}
	prev, err := i.store.UpdateStatus(id, status, changedBy, i.now())
	if err != nil {
		return nil, err
	}
	metrics.RequestStatusChanges.WithLabelValues(string(prev), string(status)).Inc()
	log.WithFields(log.Fields{
		"request_id": id,
		"from":       prev,
		"to":         status,
		"changed_by": changedBy,
	}).Info("status permintaan diubah")
	return i.Get(id)
}

func (i impl) ListOwn(userID string) ([]requestsapimodels.RequestView, error) {
	list, _, err := i.store.List(requestsstore.ListFilter{
		Sort:        requestsstore.SortNewest,
		RequesterID: userID,
	})
	if err != nil {
		return nil, err
	}
	return ToViews(list), nil
}

func (i impl) Recent(limit int) ([]requestsapimodels.RequestView, error) {
	list, _, err := i.store.List(requestsstore.ListFilter{
		Sort:  requestsstore.SortNewest,
		Page:  1,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	return ToViews(list), nil
}

func (i impl) CountPending() (int64, error) {
	return i.store.CountByStatus(models.RequestStatusPending)
}

func ToView(rec dbmodels.Request) requestsapimodels.RequestView {
	return requestsapimodels.RequestView{
		ID: rec.ID,
		Requester: requestsapimodels.RequesterView{
			ID:    helpers.StringValue(rec.RequesterID),
			Name:  rec.RequesterName,
			Role:  rec.RequesterRole,
			Phone: rec.RequesterPhone,
		},
		RequestType: rec.RequestType,
		Detail:      rec.Detail,
		Status:      rec.Status,
		StatusLabel: rec.Status.ToHuman(),
		StatusColor: rec.Status.Color(),
		CreatedAt:   helpers.FormatTime(rec.CreatedAt),
		UpdatedAt:   helpers.FormatTime(rec.UpdatedAt),
	}
}

func ToViews(list []dbmodels.Request) []requestsapimodels.RequestView {
	result := make([]requestsapimodels.RequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, ToView(rec))
	}
	return result
}

func ToDetailView(rec dbmodels.Request) *requestsapimodels.RequestDetailView {
	view := &requestsapimodels.RequestDetailView{
		RequestView:   ToView(rec),
		StatusOptions: requestsapimodels.StatusOptions(),
		StatusHistory: make([]requestsapimodels.StatusLogView, 0, len(rec.StatusLogs)),
	}
	if rec.Payload != "" && json.Valid([]byte(rec.Payload)) {
		view.Payload = json.RawMessage(rec.Payload)
	}
	for _, logRec := range rec.StatusLogs {
		view.StatusHistory = append(view.StatusHistory, requestsapimodels.StatusLogView{
			FromStatus: logRec.FromStatus,
			ToStatus:   logRec.ToStatus,
			ChangedBy:  logRec.ChangedBy,
			ChangedAt:  helpers.FormatTime(logRec.ChangedAt),
		})
	}
	return view
}
