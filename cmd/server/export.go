// cmd/server/export.go
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export-orders",
	Short: "Write the seed orders as CSV",
	Long: `Write the seed orders as CSV.

Sessions live only in the memory of a running server, so this command starts
from a fresh default session. Use GET /v1/orders/export on a running server to
export a session's edits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		ws := a.manager.Workspace(cmd.Context(), "")
		result, err := ws.Orders.Export(cmd.Context())
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(result.Data)
			return err
		}
		if err := os.WriteFile(exportOutput, result.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}

		logrus.WithFields(logrus.Fields{
			"rows":     result.Rows,
			"file":     exportOutput,
			"location": result.Location,
		}).Info("Orders exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, stdout when empty")
	rootCmd.AddCommand(exportCmd)
}
