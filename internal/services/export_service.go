package services

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/internal/repositories"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ErrUnsupportedFormat is returned for an unknown export format.
var ErrUnsupportedFormat = errors.New("unsupported export format")

const exportSheet = "Sheet1"

// ExportRow is one product line of a catalogue export.
type ExportRow struct {
	ID              string `csv:"id"`
	Name            string `csv:"name"`
	Category        string `csv:"category"`
	Price           string `csv:"price"`
	SalePrice       string `csv:"sale_price"`
	DiscountPercent int    `csv:"discount_percent"`
	Availability    string `csv:"availability"`
	Featured        bool   `csv:"featured"`
	Specs           string `csv:"specs"`
}

var exportHeader = []string{"ID", "Name", "Category", "Price", "Sale Price", "Discount %", "Availability", "Featured", "Specs"}

func (r ExportRow) cells() []interface{} {
	return []interface{}{r.ID, r.Name, r.Category, r.Price, r.SalePrice, r.DiscountPercent, r.Availability, r.Featured, r.Specs}
}

// ExportService writes the catalogue as a spreadsheet.
type ExportService struct {
	products repositories.ProductRepository
}

// NewExportService creates a new ExportService.
func NewExportService(products repositories.ProductRepository) *ExportService {
	return &ExportService{products: products}
}

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Rows builds the export rows in catalogue order.
func (s *ExportService) Rows() ([]ExportRow, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	rows := make([]ExportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, exportRow(p))
	}
	return rows, nil
}

// Export writes every product to w in format.
func (s *ExportService) Export(w io.Writer, format string) error {
	if format != FormatCSV && format != FormatXLSX {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	rows, err := s.Rows()
	if err != nil {
		return err
	}
	if format == FormatCSV {
		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("failed to write csv export: %w", err)
		}
		return nil
	}
	return writeXLSX(w, rows)
}

func writeXLSX(w io.Writer, rows []ExportRow) error {
	f := excelize.NewFile()
	for col, title := range exportHeader {
		f.SetCellValue(exportSheet, cellName(col, 1), title)
	}
	for i, r := range rows {
		for col, v := range r.cells() {
			f.SetCellValue(exportSheet, cellName(col, i+2), v)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx export: %w", err)
	}
	return nil
}

// cellName builds an A1 reference; exports stay well under 26 columns.
func cellName(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}

func exportRow(p models.Product) ExportRow {
	row := ExportRow{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		Price:           catalog.FormatPrice(p.Price),
		DiscountPercent: catalog.DiscountPercent(p),
		Availability:    p.Availability,
		Featured:        p.Featured,
		Specs:           formatSpecs(p.SpecMap()),
	}
	if p.Discount > 0 {
		row.SalePrice = catalog.FormatPrice(p.Discount)
	}
	return row
}

func formatSpecs(specs models.Specs) string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+specs[k])
	}
	return strings.Join(parts, "; ")
}
