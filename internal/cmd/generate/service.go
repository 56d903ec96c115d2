package generate

import (
	"github.com/spf13/cobra"

	"github.com/ynsinc/ris/internal/cmdtypes"
	"github.com/ynsinc/ris/internal/naming"
	"github.com/ynsinc/ris/internal/templates"
)

// NewServiceCmd creates the make:service command.
func NewServiceCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		flags      commonFlags
		controller string
	)

	c := &cobra.Command{
		Use:   "make:service",
		Short: "Create a service class",
		Long: `Create an empty service class under app/Services.

Without --name the class is named after the controller with a "Service"
suffix. Services are never bound in a provider file.

Examples:
  # App\Services\InvoiceService
  ris make:service --controller Invoice

  # App\Services\Billing\Reconciler
  ris make:service --subdir Billing --name Reconciler`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runService(c, cfg, &flags)
		},
	}

	c.Flags().StringVar(&controller, "controller", "", "Controller the service backs")
	flags.register(c)

	return c
}

func runService(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *commonFlags) error {
	req := naming.Request{
		Identifier: option(c, "controller"),
		Subdir:     option(c, "subdir"),
		Name:       option(c, "name"),
	}
	if err := req.Validate(); err != nil {
		return validationExit(err)
	}

	p, err := newPipeline(c, cfg, settings{style: templates.Standalone}, flags)
	if err != nil {
		return err
	}

	result, err := p.GenerateService(req)
	if err != nil {
		return validationExit(err)
	}

	return report(c.OutOrStdout(), cfg, result.ClassName, result)
}
