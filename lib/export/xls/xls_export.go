package xlsexport

import (
	exportapimodels "broilink-backend/models/api/export"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Laporan"

func Export(table exportapimodels.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("kesalahan menutup file xlsx")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "kesalahan membuat sheet xlsx")
	}
	row, err := writeTitle(f, sheetName, 0, []string{
		table.Title,
		"Kandang: " + table.FarmName,
		"Periode: " + table.PeriodLabel,
	})
	if err != nil {
		return nil, errors.Wrap(err, "kesalahan menulis judul xlsx")
	}
	row++
	if row, err = writeHeader(f, sheetName, row, table.Headers); err != nil {
		return nil, errors.Wrap(err, "kesalahan menulis header xlsx")
	}
	if len(table.Rows) != 0 {
		if err = applyDataCellStyle(f, sheetName, 2, row+1, len(table.Headers), row+len(table.Rows)); err != nil {
			return nil, errors.Wrap(err, "kesalahan menulis data xlsx")
		}
	}
	for _, values := range table.Rows {
		row++
		for idx, value := range values {
			if value == nil {
				continue
			}
			if err = writeColumn(f, sheetName, idx+1, row, value); err != nil {
				return nil, errors.Wrap(err, "kesalahan menulis data xlsx")
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "kesalahan menyimpan xlsx")
	}
	return buf.Bytes(), nil
}
