package collect

import (
	"errors"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/config"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	generalutils "github.com/ShifengHuGit/AWSResourceCollection/utils/general"
	promptutils "github.com/ShifengHuGit/AWSResourceCollection/utils/prompt"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Service inventory.ServiceInterface
	Signals generalutils.GeneralUtilsInterface
	Config  *config.Config
}

func NewCollectCmd(deps Dependencies) *cobra.Command {
	var (
		regions     []string
		allRegions  bool
		draw        bool
		profile     string
		outputDir   string
		noFiles     bool
		graphFormat string
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect and report AWS resources",
		Long: `Walks the selected regions sequentially and prints aligned tables for
EC2 instances, EBS volumes, RDS instances, VPCs, subnets, security groups,
load balancers, EKS clusters and ECR repositories, plus the account's S3
buckets. The console output is tee'd to a timestamped log file and the raw
API responses are saved as JSON; --draw adds a graphviz topology graph.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := deps.Signals.HandleSignals()
			err := deps.Service.Run(ctx, buildOptions(deps.Config, options{
				regions:     regions,
				allRegions:  allRegions,
				draw:        draw,
				profile:     profile,
				outputDir:   outputDir,
				noFiles:     noFiles,
				graphFormat: graphFormat,
			}))
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&regions, "region", "r", nil, "regions to collect, as names or 1-based indexes from 'awsrc regions' (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&allRegions, "all", false, "collect every opted-in region")
	cmd.Flags().BoolVarP(&draw, "draw", "d", false, "write a DOT topology graph and render it with graphviz")
	cmd.Flags().StringVar(&profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the report log, snapshot and graph files")
	cmd.Flags().BoolVar(&noFiles, "no-files", false, "print to the console only, write no files")
	cmd.Flags().StringVar(&graphFormat, "graph-format", "", "rendered graph format, e.g. png or svg")

	return cmd
}

type options struct {
	regions     []string
	allRegions  bool
	draw        bool
	profile     string
	outputDir   string
	noFiles     bool
	graphFormat string
}

// buildOptions merges flags over the config file: a flag that was set wins,
// otherwise the config value applies, otherwise the service defaults.
func buildOptions(cfg *config.Config, o options) inventory.Options {
	opts := inventory.Options{
		Selectors:   o.regions,
		AllRegions:  o.allRegions,
		Draw:        o.draw,
		SkipFiles:   o.noFiles,
		Profile:     o.profile,
		OutputDir:   o.outputDir,
		GraphFormat: o.graphFormat,
	}
	if cfg == nil {
		return opts
	}

	if opts.Profile == "" {
		opts.Profile = cfg.Aws.Profile
	}
	if len(opts.Selectors) == 0 && !opts.AllRegions {
		opts.Selectors = cfg.Aws.Regions
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.Output.Directory
	}
	if opts.GraphFormat == "" {
		opts.GraphFormat = cfg.Graph.Format
	}
	opts.Placeholder = cfg.Output.Placeholder
	if cfg.HasStaticCredentials() {
		opts.AccessKeyID = cfg.Aws.AccessKeyID
		opts.SecretAccessKey = cfg.Aws.SecretAccessKey
	}
	return opts
}
