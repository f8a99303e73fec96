package root

import (
	"fmt"

	"github.com/ShifengHuGit/AWSResourceCollection/cmd/collect"
	"github.com/ShifengHuGit/AWSResourceCollection/cmd/regions"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/config"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/version"
	generalutils "github.com/ShifengHuGit/AWSResourceCollection/utils/general"
	"github.com/spf13/cobra"
)

func NewRootCmd(service inventory.ServiceInterface, signals generalutils.GeneralUtilsInterface, cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "awsrc",
		Short:   "AWS resource inventory reporter",
		Long:    `Collects EC2, EBS, RDS, VPC, ELB, EKS, ECR and S3 resources across selected regions into aligned tables, a raw-response JSON snapshot, and an optional topology graph.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}

	deps := collect.Dependencies{Service: service, Signals: signals, Config: cfg}
	rootCmd.AddCommand(collect.NewCollectCmd(deps))
	rootCmd.AddCommand(regions.NewRegionsCmd(regions.Dependencies{Service: service, Signals: signals, Config: cfg}))

	return rootCmd
}
