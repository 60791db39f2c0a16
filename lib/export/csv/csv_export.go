package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	exportapimodels "broilink-backend/models/api/export"

	"github.com/pkg/errors"
)

func Export(table exportapimodels.Table) ([]byte, error) {
	buf := new(bytes.Buffer)
	// BOM agar Excel membaca UTF-8
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(buf)
	if err := w.Write(table.Headers); err != nil {
		return nil, errors.Wrap(err, "kesalahan menulis header csv")
	}
	for _, values := range table.Rows {
		record := make([]string, 0, len(values))
		for _, value := range values {
			record = append(record, FormatValue(value))
		}
		if err := w.Write(record); err != nil {
			return nil, errors.Wrap(err, "kesalahan menulis data csv")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "kesalahan menulis csv")
	}
	return buf.Bytes(), nil
}

func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
