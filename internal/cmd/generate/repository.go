package generate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ynsinc/ris/internal/cmdtypes"
	"github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/naming"
	"github.com/ynsinc/ris/internal/provider"
	"github.com/ynsinc/ris/internal/templates"
)

// NewRepositoryCmd creates the make:repository command.
func NewRepositoryCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		flags commonFlags
		model string
		style string
		shape string
	)

	c := &cobra.Command{
		Use:   "make:repository",
		Short: "Create a repository interface and implementation",
		Long: `Create <Name>Interface and <Name>Repository and bind the pair in the
service container.

The binding is added to the provider file selected by --provider-shape:
  method  app/Providers/RepositoryServiceProvider.php, after the
          "// @ris:bindings" line in register(); created when missing
  array   bootstrap/repositories.php, as the first [Interface, Repository]
          pair; must already exist
  auto    array when bootstrap/repositories.php exists, method otherwise

Running the command again never duplicates a binding.

Examples:
  # App\Interfaces\OrderInterface and App\Repositories\OrderRepository
  ris make:repository --model Order

  # Place both under Billing/Invoices
  ris make:repository --model order --subdir Billing/Invoices

  # Extend the shared BaseRepository, created on first use
  ris make:repository --model Order --style base`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runRepository(c, cfg, &flags)
		},
	}

	c.Flags().StringVar(&model, "model", "", "Model the repository is for")
	c.Flags().StringVar(&style, "style", "",
		fmt.Sprintf("Template style (%s) (env: RIS_STYLE)", strings.Join(templates.ValidStyles(), ", ")))
	c.Flags().StringVar(&shape, "provider-shape", "",
		fmt.Sprintf("Provider file shape (%s) (env: RIS_PROVIDER_SHAPE)", strings.Join(provider.ValidShapes(), ", ")))
	flags.register(c)

	return c
}

func runRepository(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *commonFlags) error {
	req := naming.Request{
		Identifier: option(c, "model"),
		Subdir:     option(c, "subdir"),
		Name:       option(c, "name"),
	}
	if err := req.Validate(); err != nil {
		return validationExit(err)
	}

	styleValue := cfg.Loader.Resolve("style", flagPtr(c, "style"))
	shapeValue := cfg.Loader.Resolve("provider.shape", flagPtr(c, "provider-shape"))
	config.LogResolvedValues(styleValue, shapeValue)

	style, err := templates.ParseStyle(styleValue.Value)
	if err != nil {
		return validationExit(oerrors.NewValidationError(err.Error(), "--style", ""))
	}
	shape, err := provider.ParseShape(shapeValue.Value)
	if err != nil {
		return validationExit(oerrors.NewValidationError(err.Error(), "--provider-shape", ""))
	}

	p, err := newPipeline(c, cfg, settings{style: style, shape: shape}, flags)
	if err != nil {
		return err
	}

	result, err := p.GenerateRepository(req)
	if err != nil {
		return validationExit(err)
	}

	return report(c.OutOrStdout(), cfg, result.ClassName+"Repository", result)
}
