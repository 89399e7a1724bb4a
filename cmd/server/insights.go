// cmd/server/insights.go
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Manage the insight service credential",
}

var insightsConfigureCmd = &cobra.Command{
	Use:   "configure <api-key>",
	Short: "Store the insight service API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.client.Configure(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configured")
		return nil
	},
}

var insightsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is configured and list the models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		data, err := json.MarshalIndent(map[string]interface{}{
			"configured": a.client.IsConfigured(),
			"provider":   a.client.ProviderName(),
			"models":     a.client.Models(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	insightsCmd.AddCommand(insightsConfigureCmd, insightsStatusCmd)
	rootCmd.AddCommand(insightsCmd)
}
