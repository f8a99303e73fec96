package regions

import (
	"github.com/ShifengHuGit/AWSResourceCollection/internal/config"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	generalutils "github.com/ShifengHuGit/AWSResourceCollection/utils/general"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Service inventory.ServiceInterface
	Signals generalutils.GeneralUtilsInterface
	Config  *config.Config
}

// NewRegionsCmd lists every region with its 1-based index, the same numbers
// the collect command's --region flag accepts.
func NewRegionsCmd(deps Dependencies) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:          "regions",
		Short:        "List available regions and their indexes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := deps.Signals.HandleSignals()

			opts := inventory.Options{Profile: profile}
			if cfg := deps.Config; cfg != nil {
				if opts.Profile == "" {
					opts.Profile = cfg.Aws.Profile
				}
				if cfg.HasStaticCredentials() {
					opts.AccessKeyID = cfg.Aws.AccessKeyID
					opts.SecretAccessKey = cfg.Aws.SecretAccessKey
				}
			}
			return deps.Service.Regions(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "AWS shared config profile")

	return cmd
}
