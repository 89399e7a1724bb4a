package main

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersWritesSeedOrders(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("FAULT_LATENCY_MIN", "0s")
	t.Setenv("FAULT_LATENCY_MAX", "0s")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("EXPORT_DIR", "")
	t.Setenv("LOG_LEVEL", "error")

	assert.Nil(t, exportCmd.Flags().Lookup("session"))

	out := filepath.Join(t.TempDir(), "orders.csv")
	t.Cleanup(func() { exportOutput = "" })
	rootCmd.SetArgs([]string{"export-orders", "-o", out})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"ID", "Customer", "Status", "Total", "Date"}, rows[0])
}
