package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/briandowns/spinner"
	"github.com/spf13/afero"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/artifact"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/graph"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/report"
	"github.com/ShifengHuGit/AWSResourceCollection/models"
	generalutils "github.com/ShifengHuGit/AWSResourceCollection/utils/general"
	promptutils "github.com/ShifengHuGit/AWSResourceCollection/utils/prompt"
)

// Options control one collection run. Selectors hold 1-based indexes into
// the printed region list or literal region names; when empty and AllRegions
// is false, the run prompts for a selection.
type Options struct {
	Selectors       []string
	AllRegions      bool
	Draw            bool
	SkipFiles       bool
	Profile         string
	OutputDir       string
	Placeholder     string
	GraphFormat     string
	AccessKeyID     string
	SecretAccessKey string
}

// ServiceInterface is the surface the CLI commands program against.
type ServiceInterface interface {
	Run(ctx context.Context, opts Options) error
	Regions(ctx context.Context, opts Options) error
}

// TopologyBuilder produces DOT source from the collected inventories.
type TopologyBuilder interface {
	Build(inventories []models.RegionInventory) string
}

// TopologyRenderer turns a DOT file into an image, reporting whether one was
// produced.
type TopologyRenderer interface {
	Render(dotPath, imagePath, format string) (bool, error)
}

var (
	_ ServiceInterface = (*Service)(nil)
	_ TopologyBuilder  = (*graph.Builder)(nil)
	_ TopologyRenderer = (*graph.Renderer)(nil)
)

// Service runs resource collection. Every dependency is a field so tests can
// swap in mocks; NewService fills in the real implementations.
type Service struct {
	Loader          AWSConfigLoader
	RegionalClients func(cfg aws.Config) *Clients
	GlobalClients   func(cfg aws.Config) *Globals
	Prompter        promptutils.Prompter
	Fs              afero.Fs
	Console         io.Writer
	SpinnerWriter   io.Writer
	Version         string

	// Nil means the real implementation, built with the run's placeholder.
	GraphBuilder  TopologyBuilder
	GraphRenderer TopologyRenderer
}

func NewService(opts ...func(*Service)) *Service {
	s := &Service{
		Loader:          &DefaultAWSConfigLoader{},
		RegionalClients: NewClients,
		GlobalClients:   NewGlobals,
		Prompter:        promptutils.NewPrompt(),
		Fs:              afero.NewOsFs(),
		Console:         os.Stdout,
		SpinnerWriter:   os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Regions prints the numbered region list without collecting anything.
func (s *Service) Regions(ctx context.Context, opts Options) error {
	cfg, err := s.baseConfig(ctx, opts)
	if err != nil {
		return err
	}

	regions, err := s.GlobalClients(cfg).ListRegions(ctx)
	if err != nil {
		return err
	}

	report.NewPrinter(s.Console, opts.Placeholder).Regions(regions)
	return nil
}

// Run executes one collection pass: list the regions, resolve the selection,
// walk each selected region sequentially, then the global S3 namespace, and
// finally write the artifacts. Any AWS error aborts the run.
func (s *Service) Run(ctx context.Context, opts Options) error {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = models.Placeholder
	}

	cfg, err := s.baseConfig(ctx, opts)
	if err != nil {
		return err
	}
	globals := s.GlobalClients(cfg)

	var store *artifact.Store
	out := s.Console
	if !opts.SkipFiles {
		store, err = artifact.NewStore(s.Fs, opts.OutputDir, func(st *artifact.Store) {
			st.Console = s.Console
		})
		if err != nil {
			return err
		}
		reportLog, err := store.OpenReportLog()
		if err != nil {
			return err
		}
		defer reportLog.Close()
		out = reportLog
	}

	printer := report.NewPrinter(out, placeholder)

	regions, err := globals.ListRegions(ctx)
	if err != nil {
		return err
	}
	printer.Regions(regions)

	selected, err := s.selectRegions(regions, opts)
	if err != nil {
		return err
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(s.spinnerWriter()))

	inventories := make([]models.RegionInventory, 0, len(selected))
	dumps := make(map[string]*models.RegionDump, len(selected))
	for _, region := range selected {
		printer.RegionBanner(region)

		spin.Suffix = " collecting " + region
		spin.Start()
		inv, dump, err := s.collectRegion(ctx, region, opts)
		spin.Stop()
		if err != nil {
			return err
		}

		inventories = append(inventories, *inv)
		dumps[region] = dump

		printer.Instances(inv.Instances)
		printer.Volumes(inv.Volumes)
		printer.DBInstances(inv.DBInstances)
		printer.VPCs(inv.VPCs)
		printer.Subnets(inv.Subnets)
		printer.SecurityGroups(inv.SecurityGroups)
		printer.LoadBalancers(inv.LoadBalancers)
		printer.Clusters(inv.Clusters)
		printer.Repositories(inv.Repositories)

		if inv.Empty() {
			log.Debugf("no resources found in %s", region)
		}
	}

	spin.Suffix = " collecting S3 buckets"
	spin.Start()
	buckets, rawBuckets, err := globals.CollectBuckets(ctx)
	spin.Stop()
	if err != nil {
		return err
	}
	printer.Buckets(buckets)

	if store != nil {
		accountID, callerARN := globals.AccountIdentity(ctx)
		snap := &models.Snapshot{
			Metadata: store.Metadata(s.Version, accountID, callerARN, selected),
			Regions:  dumps,
			Buckets:  rawBuckets,
		}
		if _, err := store.WriteSnapshot(snap); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRaw API responses saved to %s\n", store.SnapshotPath())
		fmt.Fprintf(out, "Report saved to %s\n", store.ReportLogPath())
	}

	if opts.Draw {
		if store == nil {
			log.Warnf("skipping topology graph: file output is disabled")
			return nil
		}
		if err := s.drawTopology(out, store, inventories, opts, placeholder); err != nil {
			return err
		}
	}

	return nil
}

// collectRegion gathers every regional category with clients bound to that
// region. The order matches the printed report.
func (s *Service) collectRegion(ctx context.Context, region string, opts Options) (*models.RegionInventory, *models.RegionDump, error) {
	cfg, err := s.Loader.Load(ctx, LoaderOptions{
		Region:          region,
		Profile:         opts.Profile,
		AccessKeyID:     opts.AccessKeyID,
		SecretAccessKey: opts.SecretAccessKey,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS configuration for %s: %w", region, err)
	}
	clients := s.RegionalClients(cfg)

	inv := &models.RegionInventory{Region: region}
	dump := &models.RegionDump{}

	if inv.Instances, dump.Reservations, err = clients.CollectInstances(ctx); err != nil {
		return nil, nil, err
	}
	if inv.Volumes, dump.Volumes, err = clients.CollectVolumes(ctx); err != nil {
		return nil, nil, err
	}
	if inv.DBInstances, dump.DBInstances, err = clients.CollectDBInstances(ctx); err != nil {
		return nil, nil, err
	}
	if inv.VPCs, dump.VPCs, err = clients.CollectVpcs(ctx); err != nil {
		return nil, nil, err
	}
	if inv.Subnets, dump.Subnets, err = clients.CollectSubnets(ctx); err != nil {
		return nil, nil, err
	}
	if inv.SecurityGroups, dump.SecurityGroups, err = clients.CollectSecurityGroups(ctx); err != nil {
		return nil, nil, err
	}
	if inv.LoadBalancers, dump.LoadBalancers, dump.TargetGroups, err = clients.CollectLoadBalancers(ctx); err != nil {
		return nil, nil, err
	}
	if inv.Clusters, dump.Clusters, err = clients.CollectClusters(ctx); err != nil {
		return nil, nil, err
	}
	if inv.Repositories, dump.Repositories, err = clients.CollectRepositories(ctx); err != nil {
		return nil, nil, err
	}

	return inv, dump, nil
}

func (s *Service) drawTopology(out io.Writer, store *artifact.Store, inventories []models.RegionInventory, opts Options, placeholder string) error {
	builder := s.GraphBuilder
	if builder == nil {
		builder = graph.NewBuilder(placeholder)
	}
	renderer := s.GraphRenderer
	if renderer == nil {
		renderer = graph.NewRenderer(nil)
	}

	source := builder.Build(inventories)
	if err := store.WriteFile(store.DotPath(), []byte(source)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Topology graph written to %s\n", store.DotPath())

	format := opts.GraphFormat
	if format == "" {
		format = "png"
	}
	rendered, err := renderer.Render(store.DotPath(), store.ImagePath(format), format)
	if err != nil {
		return err
	}
	if rendered {
		fmt.Fprintf(out, "Topology graph rendered to %s\n", store.ImagePath(format))
	}
	return nil
}

const (
	pickRegionsChoice = "Pick regions"
	allRegionsChoice  = "All opted-in regions"
)

func (s *Service) selectRegions(regions []models.Region, opts Options) ([]string, error) {
	if opts.AllRegions {
		return ResolveRegions(regions, nil, true)
	}
	if len(opts.Selectors) > 0 {
		return ResolveRegions(regions, opts.Selectors, false)
	}

	choice, err := s.Prompter.PromptForSelection("Region selection", []string{pickRegionsChoice, allRegionsChoice})
	if err != nil {
		return nil, err
	}
	if choice == allRegionsChoice {
		// A full sweep walks every region sequentially; give the operator a
		// way out before committing. Declining falls back to picking.
		if s.Prompter.PromptForConfirmation(fmt.Sprintf("Collect all %d regions", len(regions))) {
			return ResolveRegions(regions, nil, true)
		}
	}

	answer, err := s.Prompter.PromptForInput("Regions to collect (numbers, names, or 'all')", validateRegionAnswer)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "all") {
		return ResolveRegions(regions, nil, true)
	}
	return ResolveRegions(regions, strings.Split(answer, ","), false)
}

// validateRegionAnswer is a syntactic gate for the interactive prompt;
// resolution against the real region list happens afterwards.
func validateRegionAnswer(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("enter at least one region")
	}
	if strings.EqualFold(input, "all") {
		return nil
	}
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, err := strconv.Atoi(token); err == nil {
			continue
		}
		if !generalutils.IsValidRegionFormat(token) {
			return fmt.Errorf("invalid region %q", token)
		}
	}
	return nil
}

// baseConfig loads the shared config used for global calls. Region discovery,
// STS and the S3 namespace answer from any endpoint, so a profile that pins
// no region still works.
func (s *Service) baseConfig(ctx context.Context, opts Options) (aws.Config, error) {
	cfg, err := s.Loader.Load(ctx, LoaderOptions{
		Profile:         opts.Profile,
		AccessKeyID:     opts.AccessKeyID,
		SecretAccessKey: opts.SecretAccessKey,
	})
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return cfg, nil
}

func (s *Service) spinnerWriter() io.Writer {
	if s.SpinnerWriter != nil {
		return s.SpinnerWriter
	}
	return os.Stderr
}
