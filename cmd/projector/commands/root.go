package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simaogato/nestegg-backend/internal/adapter/render"
	"github.com/simaogato/nestegg-backend/internal/config"
)

// errProjectionFailed is returned after the failure has already been rendered
var errProjectionFailed = errors.New("projection failed")

// cli carries state shared by all subcommands
type cli struct {
	cfg      config.Config
	renderer *render.Renderer
}

// Execute runs the projector CLI with os.Args
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errProjectionFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "projector",
		Short:         "Retirement savings projector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.renderer = render.NewRenderer(cfg.CurrencySymbol)
			return nil
		},
	}

	root.AddCommand(projectCmd(c), remoteCmd(c))
	return root
}
