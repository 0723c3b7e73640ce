package services_test

import (
	"bytes"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"officeit/internal/models"
	"officeit/internal/services"
)

func exportFixture() []models.Product {
	return []models.Product{
		{
			ID: "p1", Name: "Laser Printer", Category: "Printers", Price: 1250, Discount: 1000,
			Availability: models.AvailabilityInStock, Featured: true,
			Specs: datatypes.NewJSONType(models.Specs{"Speed": "40ppm", "Duplex": "Yes"}),
		},
		{ID: "p2", Name: "Cable", Category: "Accessories", Price: 9.5, Availability: models.AvailabilityOutOfStock},
	}
}

func TestExportService_CSV(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("GetAll").Return(exportFixture(), nil).Once()
	service := services.NewExportService(mockRepo)

	var buf bytes.Buffer
	require.NoError(t, service.Export(&buf, services.FormatCSV))

	var rows []services.ExportRow
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, services.ExportRow{
		ID: "p1", Name: "Laser Printer", Category: "Printers",
		Price: "1,250.00", SalePrice: "1,000.00", DiscountPercent: 20,
		Availability: models.AvailabilityInStock, Featured: true,
		Specs: "Duplex: Yes; Speed: 40ppm",
	}, rows[0])
	assert.Empty(t, rows[1].SalePrice)
	assert.Zero(t, rows[1].DiscountPercent)
	mockRepo.AssertExpectations(t)
}

func TestExportService_XLSX(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("GetAll").Return(exportFixture(), nil).Once()
	service := services.NewExportService(mockRepo)

	var buf bytes.Buffer
	require.NoError(t, service.Export(&buf, services.FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Name", f.GetCellValue("Sheet1", "B1"))
	assert.Equal(t, "Laser Printer", f.GetCellValue("Sheet1", "B2"))
	assert.Equal(t, "Cable", f.GetCellValue("Sheet1", "B3"))
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	service := services.NewExportService(new(MockProductRepository))
	err := service.Export(&bytes.Buffer{}, "pdf")
	assert.ErrorIs(t, err, services.ErrUnsupportedFormat)
}
