package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmdash/scm-backend/internal/models"
)

func exportOrders() []models.Order {
	created := time.Date(2023, 10, 25, 8, 30, 0, 0, time.UTC)
	return []models.Order{
		{ID: "ORD-000001", Customer: models.OrderCustomer{Name: "Acme, Inc."}, Status: models.OrderStatusPending, Total: 1250.5, CreatedAt: created},
		{ID: "ORD-000002", Customer: models.OrderCustomer{Name: `The "Best" Co`}, Status: models.OrderStatusShipped, Total: 99, CreatedAt: created},
	}
}

func TestWriteOrdersCSVRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, exportOrders(), false))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Customer", "Status", "Total", "Date"}, records[0])
	assert.Equal(t, []string{"ORD-000001", "Acme, Inc.", "pending", "1250.5", "2023-10-25T08:30:00Z"}, records[1])
	assert.Equal(t, `The "Best" Co`, records[2][1])
}

func TestWriteOrdersCSVLegacyCorruptsCommas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, exportOrders(), true))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Customer,Status,Total,Date", lines[0])
	assert.Equal(t, "ORD-000001,Acme, Inc.,pending,1250.5,2023-10-25T08:30:00Z", lines[1])
	assert.Len(t, strings.Split(lines[1], ","), 6)
}

func TestExportServiceArchivesToLocalSink(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportServiceWithSink(LocalSink{Dir: dir}, false)

	result, err := svc.Export(context.Background(), exportOrders())
	require.NoError(t, err)
	assert.Equal(t, ExportFilename, result.Filename)
	assert.Equal(t, 2, result.Rows)
	require.NotEmpty(t, result.Location)
	assert.Equal(t, dir, filepath.Dir(result.Location))

	data, err := os.ReadFile(result.Location)
	require.NoError(t, err)
	assert.Equal(t, result.Data, data)
}

func TestExportServiceWithoutSink(t *testing.T) {
	svc := NewExportServiceWithSink(nil, false)

	result, err := svc.Export(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Location)
	assert.Equal(t, "ID,Customer,Status,Total,Date\n", string(result.Data))
}

func TestExportServiceLegacyMode(t *testing.T) {
	svc := NewExportServiceWithSink(nil, true)

	result, err := svc.Export(context.Background(), exportOrders())
	require.NoError(t, err)
	lines := strings.Split(string(result.Data), "\n")
	require.Len(t, lines, 3)
	assert.Len(t, strings.Split(lines[1], ","), 6)
}
