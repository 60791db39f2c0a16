package helpers

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// MaskPhone: "+6281234567890" -> "+62812****7890"
func MaskPhone(phone string) string {
	runes := []rune(phone)
	if len(runes) <= 8 {
		return phone
	}
	prefix := 6
	if !strings.HasPrefix(phone, "+") {
		prefix = 5
	}
	masked := len(runes) - prefix - 4
	if masked <= 0 {
		return phone
	}
	return string(runes[:prefix]) + strings.Repeat("*", masked) + string(runes[len(runes)-4:])
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// StartOfDay - awal hari pada zona loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// PageOffset menghitung offset halaman (mulai dari 1). ok=false jika halaman melewati data terakhir
func PageOffset(page, limit int, rowCount int64) (offset int, ok bool) {
	if page < 1 {
		page = 1
	}
	if int64(page-1) >= (rowCount+int64(limit)-1)/int64(limit) {
		return 0, page == 1
	}
	return (page - 1) * limit, true
}
