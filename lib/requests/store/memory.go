package requestsstore

import (
	"sort"
	"sync"
	"time"

	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/google/uuid"
)

// NewMemoryInstance - penyimpanan in-memory untuk mode fixture dan pengujian
func NewMemoryInstance(seed ...dbmodels.Request) Provider {
	m := &memoryImpl{
		items: map[string]*dbmodels.Request{},
	}
	for _, rec := range seed {
		_, _ = m.Create(rec)
	}
	return m
}

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]*dbmodels.Request
}

func (m *memoryImpl) Create(rec dbmodels.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	rec.StatusLogs = nil
	m.items[rec.ID] = &rec
	return rec.ID, nil
}

func (m *memoryImpl) GetByID(id string) (*dbmodels.Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	result := cloneRequest(rec)
	return &result, nil
}

func (m *memoryImpl) List(filter ListFilter) ([]dbmodels.Request, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]dbmodels.Request, 0, len(m.items))
	for _, rec := range m.items {
		if filter.RequesterID != "" && (rec.RequesterID == nil || *rec.RequesterID != filter.RequesterID) {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		item := cloneRequest(rec)
		item.StatusLogs = nil
		list = append(list, item)
	}
	sort.Slice(list, func(a, b int) bool {
		less := list[a].CreatedAt.Before(list[b].CreatedAt) ||
			(list[a].CreatedAt.Equal(list[b].CreatedAt) && list[a].ID < list[b].ID)
		if filter.Sort == SortOldest {
			return less
		}
		return !less
	})
	rowCount := int64(len(list))
	if filter.Limit > 0 {
		from, ok := helpers.PageOffset(filter.Page, filter.Limit, rowCount)
		if !ok || from >= len(list) {
			return []dbmodels.Request{}, rowCount, nil
		}
		to := from + filter.Limit
		if to > len(list) {
			to = len(list)
		}
		list = list[from:to]
	}
	return list, rowCount, nil
}

func (m *memoryImpl) CountByStatus(status models.RequestStatus) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, rec := range m.items {
		if rec.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memoryImpl) UpdateStatus(id string, status models.RequestStatus, changedBy string, changedAt time.Time) (models.RequestStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[id]
	if !ok {
		return "", models.NotFoundError("permintaan tidak ditemukan")
	}
	prev := rec.Status
	rec.Status = status
	rec.UpdatedAt = changedAt
	rec.StatusLogs = append(rec.StatusLogs, dbmodels.RequestStatusLog{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: changedAt,
			UpdatedAt: changedAt,
		},
		RequestID:  id,
		FromStatus: prev,
		ToStatus:   status,
		ChangedBy:  changedBy,
		ChangedAt:  changedAt,
	})
	return prev, nil
}

func cloneRequest(rec *dbmodels.Request) dbmodels.Request {
	result := *rec
	if rec.RequesterID != nil {
		requesterID := *rec.RequesterID
		result.RequesterID = &requesterID
	}
	result.StatusLogs = append([]dbmodels.RequestStatusLog(nil), rec.StatusLogs...)
	return result
}
