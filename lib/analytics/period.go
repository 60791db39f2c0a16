package analytics

import (
	"time"

	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
)

// Bucket - rentang [From, To) pada satu titik grafik
type Bucket struct {
	Label string
	From  time.Time
	To    time.Time
}

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

var monthLabels = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// Buckets membagi periode yang berakhir pada hari now (zona loc) menjadi titik-titik grafik
func Buckets(period models.Period, now time.Time, loc *time.Location) []Bucket {
	today := helpers.StartOfDay(now, loc)
	switch period {
	case models.Period1Week:
		result := make([]Bucket, 0, 7)
		for day := 6; day >= 0; day-- {
			from := today.AddDate(0, 0, -day)
			result = append(result, Bucket{
				Label: weekdayLabels[from.Weekday()],
				From:  from,
				To:    from.AddDate(0, 0, 1),
			})
		}
		return result
	case models.Period1Month:
		start := today.AddDate(0, 0, -27)
		result := make([]Bucket, 0, 4)
		for week := 0; week < 4; week++ {
			from := start.AddDate(0, 0, week*7)
			result = append(result, Bucket{
				Label: "Minggu " + string(rune('1'+week)),
				From:  from,
				To:    from.AddDate(0, 0, 7),
			})
		}
		return result
	case models.Period6Months:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		result := make([]Bucket, 0, 6)
		for month := 5; month >= 0; month-- {
			from := firstOfMonth.AddDate(0, -month, 0)
			result = append(result, Bucket{
				Label: monthLabels[from.Month()-1],
				From:  from,
				To:    from.AddDate(0, 1, 0),
			})
		}
		return result
	default:
		result := make([]Bucket, 0, 6)
		for slot := 0; slot < 6; slot++ {
			from := today.Add(time.Duration(slot*4) * time.Hour)
			result = append(result, Bucket{
				Label: from.Format("15") + ".00",
				From:  from,
				To:    from.Add(4 * time.Hour),
			})
		}
		return result
	}
}

// Range - awal bucket pertama dan akhir bucket terakhir
func Range(buckets []Bucket) (from, to time.Time) {
	if len(buckets) == 0 {
		return time.Time{}, time.Time{}
	}
	return buckets[0].From, buckets[len(buckets)-1].To
}

// BucketIndex - indeks bucket yang memuat t, -1 bila di luar periode
func BucketIndex(buckets []Bucket, t time.Time) int {
	for idx, bucket := range buckets {
		if !t.Before(bucket.From) && t.Before(bucket.To) {
			return idx
		}
	}
	return -1
}
