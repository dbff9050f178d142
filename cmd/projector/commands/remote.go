package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	grpcadapter "github.com/simaogato/nestegg-backend/internal/adapter/grpc"
)

// remote: run the projection on a projector server
func remoteCmd(c *cli) *cobra.Command {
	var (
		flags   inputFlags
		addr    string
		token   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Project retirement savings on a projector server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if timeout <= 0 {
				return fmt.Errorf("--timeout must be positive, got %s", timeout)
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.GRPCAddr
			}
			if !cmd.Flags().Changed("token") {
				token = c.cfg.APIToken
			}

			client, err := grpcadapter.NewClient(addr, token)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return c.run(ctx, cmd, &flags, client)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "server address (default $PROJECTOR_GRPC_ADDR)")
	cmd.Flags().StringVar(&token, "token", "", "API token (default $PROJECTOR_API_TOKEN)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	return cmd
}
