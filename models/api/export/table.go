package exportapimodels

import "time"

// Table - laporan yang siap diekspor; nil pada Rows berarti sel kosong
type Table struct {
	Title       string
	FarmName    string
	PeriodLabel string
	GeneratedAt time.Time
	Headers     []string
	Rows        [][]interface{}
}

type File struct {
	Name        string
	ContentType string
	Body        []byte
}
