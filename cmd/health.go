package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/TextValidator/internal/client"
)

const healthTimeout = 5 * time.Second

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the validation service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		status, err := c.Health(ctx)
		if err != nil {
			return errors.New(client.Message(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.BaseURL(), status)
		return nil
	},
}
