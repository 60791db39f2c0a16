package pdfexport

import (
	"bytes"

	csvexport "broilink-backend/lib/export/csv"
	exportapimodels "broilink-backend/models/api/export"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

func Export(table exportapimodels.Table) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("pdf export panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(table.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(table.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Kandang: "+table.FarmName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Periode: "+table.PeriodLabel), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Dibuat: "+table.GeneratedAt.Format("02-01-2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(table.Headers))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(217, 234, 211)
	for _, header := range table.Headers {
		pdf.CellFormat(colWidth, 10, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(table.Rows) == 0 {
		pdf.CellFormat(colWidth*float64(len(table.Headers)), 8, tr("Tidak ada data pada periode ini"), "1", 1, "C", false, 0, "")
	}
	for _, values := range table.Rows {
		for idx, value := range values {
			align := "R"
			if idx == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, 7, tr(csvexport.FormatValue(value)), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "kesalahan menyimpan pdf")
	}
	return buf.Bytes(), nil
}
