package models

import "strings"

type Period string

const (
	Period1Day    Period = "1day"
	Period1Week   Period = "1week"
	Period1Month  Period = "1month"
	Period6Months Period = "6months"
)

var periodHumanName = map[Period]string{
	Period1Day:    "1 Hari Terakhir",
	Period1Week:   "1 Minggu Terakhir",
	Period1Month:  "1 Bulan Terakhir",
	Period6Months: "6 Bulan Terakhir",
}

// ParsePeriod menerima kode periode maupun label dari dashboard. Nilai kosong berarti 1day.
func ParsePeriod(value string) (Period, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Period1Day, true
	}
	p := Period(strings.ToLower(value))
	if _, ok := periodHumanName[p]; ok {
		return p, true
	}
	for period, human := range periodHumanName {
		if strings.EqualFold(human, value) {
			return period, true
		}
	}
	return "", false
}

func (p Period) ToHuman() string {
	if human, exist := periodHumanName[p]; exist {
		return human
	}
	return string(p)
}
