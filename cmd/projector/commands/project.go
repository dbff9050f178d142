package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/usecase/projection"
)

// project: run the projection in-process
func projectCmd(c *cli) *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project retirement savings year by year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), cmd, &flags, projection.NewProjectionService())
		},
	}

	flags.register(cmd)
	return cmd
}

// run projects the flag inputs and renders either the table or the failure in its place
func (c *cli) run(ctx context.Context, cmd *cobra.Command, flags *inputFlags, projector domain.Projector) error {
	input, startYear := flags.input(cmd, cmd.ErrOrStderr())

	if err := input.CheckBounds(); err != nil {
		return c.fail(cmd, err)
	}

	result, err := projector.Project(ctx, input, startYear)
	if err != nil {
		return c.fail(cmd, err)
	}

	return c.renderer.Table(cmd.OutOrStdout(), result)
}

// fail renders err where the table would go
// Anything other than a validation error is also reported on stderr
func (c *cli) fail(cmd *cobra.Command, err error) error {
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "projection failed: %v\n", err)
	}
	if rerr := c.renderer.Error(cmd.OutOrStdout(), err); rerr != nil {
		return rerr
	}
	return errProjectionFailed
}
