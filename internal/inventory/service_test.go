package inventory_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	"github.com/ShifengHuGit/AWSResourceCollection/models"
	mock_awsrc "github.com/ShifengHuGit/AWSResourceCollection/tests/mock"
	mock_inventory "github.com/ShifengHuGit/AWSResourceCollection/tests/mock/inventory"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeBuilder struct {
	inventories []models.RegionInventory
}

func (f *fakeBuilder) Build(inventories []models.RegionInventory) string {
	f.inventories = inventories
	return "digraph {}"
}

type fakeRenderer struct {
	dotPath   string
	imagePath string
	format    string
	calls     int
	rendered  bool
	err       error
}

func (f *fakeRenderer) Render(dotPath, imagePath, format string) (bool, error) {
	f.calls++
	f.dotPath = dotPath
	f.imagePath = imagePath
	f.format = format
	return f.rendered, f.err
}

func stubLoader(ctrl *gomock.Controller) *mock_inventory.MockAWSConfigLoader {
	loader := mock_inventory.NewMockAWSConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts inventory.LoaderOptions) (aws.Config, error) {
			return aws.Config{Region: opts.Region}, nil
		}).AnyTimes()
	return loader
}

// emptyRegionalClients wires every regional API to return nothing, any
// number of times. Tests override individual mocks as needed.
func emptyRegionalClients(ctrl *gomock.Controller) *inventory.Clients {
	mockEC2 := mock_inventory.NewMockEC2API(ctrl)
	mockEC2.EXPECT().DescribeInstances(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeInstancesOutput{}, nil).AnyTimes()
	mockEC2.EXPECT().DescribeVolumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeVolumesOutput{}, nil).AnyTimes()
	mockEC2.EXPECT().DescribeVpcs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeVpcsOutput{}, nil).AnyTimes()
	mockEC2.EXPECT().DescribeSubnets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeSubnetsOutput{}, nil).AnyTimes()
	mockEC2.EXPECT().DescribeSecurityGroups(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeSecurityGroupsOutput{}, nil).AnyTimes()

	mockRDS := mock_inventory.NewMockRDSAPI(ctrl)
	mockRDS.EXPECT().DescribeDBInstances(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&rds.DescribeDBInstancesOutput{}, nil).AnyTimes()

	mockELB := mock_inventory.NewMockELBAPI(ctrl)
	mockELB.EXPECT().DescribeLoadBalancers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&elbv2.DescribeLoadBalancersOutput{}, nil).AnyTimes()

	mockEKS := mock_inventory.NewMockEKSAPI(ctrl)
	mockEKS.EXPECT().ListClusters(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&eks.ListClustersOutput{}, nil).AnyTimes()

	mockECR := mock_inventory.NewMockECRAPI(ctrl)
	mockECR.EXPECT().DescribeRepositories(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ecr.DescribeRepositoriesOutput{}, nil).AnyTimes()

	return &inventory.Clients{EC2: mockEC2, RDS: mockRDS, ELB: mockELB, EKS: mockEKS, ECR: mockECR}
}

func stubGlobals(ctrl *gomock.Controller, regions ...ec2types.Region) *inventory.Globals {
	mockEC2 := mock_inventory.NewMockEC2API(ctrl)
	mockEC2.EXPECT().DescribeRegions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeRegionsOutput{Regions: regions}, nil).AnyTimes()

	mockS3 := mock_inventory.NewMockS3API(ctrl)
	mockS3.EXPECT().ListBuckets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&s3.ListBucketsOutput{Buckets: []s3types.Bucket{{Name: aws.String("assets")}}}, nil).AnyTimes()
	mockS3.EXPECT().GetBucketLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&s3.GetBucketLocationOutput{}, nil).AnyTimes()

	mockSTS := mock_inventory.NewMockSTSAPI(ctrl)
	mockSTS.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&sts.GetCallerIdentityOutput{
			Account: aws.String("123456789012"),
			Arn:     aws.String("arn:aws:iam::123456789012:user/ops"),
		}, nil).AnyTimes()

	return &inventory.Globals{EC2: mockEC2, S3: mockS3, STS: mockSTS}
}

func TestServiceRunWritesArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regional := emptyRegionalClients(ctrl)
	mockEC2 := mock_inventory.NewMockEC2API(ctrl)
	mockEC2.EXPECT().DescribeInstances(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ec2.DescribeInstancesOutput{
		Reservations: []ec2types.Reservation{{
			Instances: []ec2types.Instance{{
				InstanceId: aws.String("i-0aaa"),
				Tags:       []ec2types.Tag{{Key: aws.String("Name"), Value: aws.String("web")}},
			}},
		}},
	}, nil)
	mockEC2.EXPECT().DescribeVolumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeVolumesOutput{}, nil)
	mockEC2.EXPECT().DescribeVpcs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeVpcsOutput{}, nil)
	mockEC2.EXPECT().DescribeSubnets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeSubnetsOutput{}, nil)
	mockEC2.EXPECT().DescribeSecurityGroups(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeSecurityGroupsOutput{}, nil)
	regional.EC2 = mockEC2

	globals := stubGlobals(ctrl,
		ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
		ec2types.Region{RegionName: aws.String("us-east-1"), OptInStatus: aws.String("opt-in-not-required")},
	)

	fs := afero.NewMemMapFs()
	console := &bytes.Buffer{}
	builder := &fakeBuilder{}
	renderer := &fakeRenderer{rendered: true}

	svc := inventory.NewService(func(s *inventory.Service) {
		s.Loader = stubLoader(ctrl)
		s.RegionalClients = func(aws.Config) *inventory.Clients { return regional }
		s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
		s.Prompter = mock_awsrc.NewMockPrompter(ctrl)
		s.Fs = fs
		s.Console = console
		s.SpinnerWriter = io.Discard
		s.Version = "1.2.3"
		s.GraphBuilder = builder
		s.GraphRenderer = renderer
	})

	err := svc.Run(context.Background(), inventory.Options{
		Selectors:   []string{"eu-west-1"},
		Draw:        true,
		OutputDir:   "/out",
		GraphFormat: "svg",
	})
	require.NoError(t, err)

	out := console.String()
	assert.Contains(t, out, "Available regions:")
	assert.Contains(t, out, "1: eu-west-1")
	assert.Contains(t, out, "Collecting resources for region: eu-west-1")
	assert.Contains(t, out, "i-0aaa")
	assert.Contains(t, out, "assets")
	assert.Contains(t, out, "Raw API responses saved to /out/awsrc-raw-")
	assert.Contains(t, out, "Report saved to /out/awsrc-report-")
	assert.Contains(t, out, "Topology graph written to /out/awsrc-topology-")

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)

	var logName, jsonName, dotName string
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".log"):
			logName = entry.Name()
		case strings.HasSuffix(entry.Name(), ".json"):
			jsonName = entry.Name()
		case strings.HasSuffix(entry.Name(), ".dot"):
			dotName = entry.Name()
		}
	}
	require.NotEmpty(t, logName, "report log not written")
	require.NotEmpty(t, jsonName, "snapshot not written")
	require.NotEmpty(t, dotName, "dot file not written")
	assert.True(t, strings.HasPrefix(logName, "awsrc-report-"))
	assert.True(t, strings.HasPrefix(jsonName, "awsrc-raw-"))
	assert.True(t, strings.HasPrefix(dotName, "awsrc-topology-"))

	// The report log is a byte-for-byte copy of the console output.
	logged, err := afero.ReadFile(fs, "/out/"+logName)
	require.NoError(t, err)
	assert.Equal(t, out, string(logged))

	snapshot, err := afero.ReadFile(fs, "/out/"+jsonName)
	require.NoError(t, err)
	assert.Equal(t, "awsrc", gjson.GetBytes(snapshot, "metadata.tool").String())
	assert.Equal(t, "1.2.3", gjson.GetBytes(snapshot, "metadata.version").String())
	assert.Equal(t, "123456789012", gjson.GetBytes(snapshot, "metadata.accountId").String())
	assert.Equal(t, "i-0aaa", gjson.GetBytes(snapshot, "regions.eu-west-1.reservations.0.Instances.0.InstanceId").String())
	assert.Equal(t, "assets", gjson.GetBytes(snapshot, "buckets.0.Name").String())

	require.Len(t, builder.inventories, 1)
	assert.Equal(t, "eu-west-1", builder.inventories[0].Region)

	dotSource, err := afero.ReadFile(fs, "/out/"+dotName)
	require.NoError(t, err)
	assert.Equal(t, "digraph {}", string(dotSource))

	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, "svg", renderer.format)
	assert.True(t, strings.HasSuffix(renderer.imagePath, ".svg"))
	assert.Equal(t, "/out/"+dotName, renderer.dotPath)
}

func TestServiceRunPromptsWhenNoSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	globals := stubGlobals(ctrl,
		ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
	)

	prompter := mock_awsrc.NewMockPrompter(ctrl)
	prompter.EXPECT().
		PromptForSelection("Region selection", []string{"Pick regions", "All opted-in regions"}).
		Return("Pick regions", nil)
	prompter.EXPECT().PromptForInput(gomock.Any(), gomock.Any()).Return("1", nil)

	console := &bytes.Buffer{}
	svc := inventory.NewService(func(s *inventory.Service) {
		s.Loader = stubLoader(ctrl)
		s.RegionalClients = func(aws.Config) *inventory.Clients { return emptyRegionalClients(ctrl) }
		s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
		s.Prompter = prompter
		s.Fs = afero.NewMemMapFs()
		s.Console = console
		s.SpinnerWriter = io.Discard
	})

	err := svc.Run(context.Background(), inventory.Options{SkipFiles: true})
	require.NoError(t, err)
	assert.Contains(t, console.String(), "Collecting resources for region: eu-west-1")
}

func TestServiceRunInteractiveAllRegions(t *testing.T) {
	t.Run("confirmed sweep collects every opted-in region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		globals := stubGlobals(ctrl,
			ec2types.Region{RegionName: aws.String("ap-south-1"), OptInStatus: aws.String("opt-in-not-required")},
			ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
		)

		prompter := mock_awsrc.NewMockPrompter(ctrl)
		prompter.EXPECT().
			PromptForSelection(gomock.Any(), gomock.Any()).
			Return("All opted-in regions", nil)
		prompter.EXPECT().PromptForConfirmation("Collect all 2 regions").Return(true)

		var visited []string
		svc := inventory.NewService(func(s *inventory.Service) {
			s.Loader = stubLoader(ctrl)
			s.RegionalClients = func(cfg aws.Config) *inventory.Clients {
				visited = append(visited, cfg.Region)
				return emptyRegionalClients(ctrl)
			}
			s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
			s.Prompter = prompter
			s.Fs = afero.NewMemMapFs()
			s.Console = &bytes.Buffer{}
			s.SpinnerWriter = io.Discard
		})

		err := svc.Run(context.Background(), inventory.Options{SkipFiles: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"ap-south-1", "eu-west-1"}, visited)
	})

	t.Run("declined sweep falls back to picking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		globals := stubGlobals(ctrl,
			ec2types.Region{RegionName: aws.String("ap-south-1"), OptInStatus: aws.String("opt-in-not-required")},
			ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
		)

		prompter := mock_awsrc.NewMockPrompter(ctrl)
		prompter.EXPECT().
			PromptForSelection(gomock.Any(), gomock.Any()).
			Return("All opted-in regions", nil)
		prompter.EXPECT().PromptForConfirmation(gomock.Any()).Return(false)
		prompter.EXPECT().PromptForInput(gomock.Any(), gomock.Any()).Return("eu-west-1", nil)

		var visited []string
		svc := inventory.NewService(func(s *inventory.Service) {
			s.Loader = stubLoader(ctrl)
			s.RegionalClients = func(cfg aws.Config) *inventory.Clients {
				visited = append(visited, cfg.Region)
				return emptyRegionalClients(ctrl)
			}
			s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
			s.Prompter = prompter
			s.Fs = afero.NewMemMapFs()
			s.Console = &bytes.Buffer{}
			s.SpinnerWriter = io.Discard
		})

		err := svc.Run(context.Background(), inventory.Options{SkipFiles: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"eu-west-1"}, visited)
	})
}

func TestServiceRunAllRegionsSkipsNotOptedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	globals := stubGlobals(ctrl,
		ec2types.Region{RegionName: aws.String("ap-south-1"), OptInStatus: aws.String("opt-in-not-required")},
		ec2types.Region{RegionName: aws.String("me-south-1"), OptInStatus: aws.String("not-opted-in")},
		ec2types.Region{RegionName: aws.String("us-east-1"), OptInStatus: aws.String("opt-in-not-required")},
	)

	var visited []string
	svc := inventory.NewService(func(s *inventory.Service) {
		s.Loader = stubLoader(ctrl)
		s.RegionalClients = func(cfg aws.Config) *inventory.Clients {
			visited = append(visited, cfg.Region)
			return emptyRegionalClients(ctrl)
		}
		s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
		s.Prompter = mock_awsrc.NewMockPrompter(ctrl)
		s.Fs = afero.NewMemMapFs()
		s.Console = &bytes.Buffer{}
		s.SpinnerWriter = io.Discard
	})

	err := svc.Run(context.Background(), inventory.Options{AllRegions: true, SkipFiles: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"ap-south-1", "us-east-1"}, visited)
}

func TestServiceRunAbortsOnCollectorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEC2 := mock_inventory.NewMockEC2API(ctrl)
	mockEC2.EXPECT().DescribeInstances(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("socket closed"))

	globals := stubGlobals(ctrl,
		ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
	)

	svc := inventory.NewService(func(s *inventory.Service) {
		s.Loader = stubLoader(ctrl)
		s.RegionalClients = func(aws.Config) *inventory.Clients { return &inventory.Clients{EC2: mockEC2} }
		s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
		s.Prompter = mock_awsrc.NewMockPrompter(ctrl)
		s.Fs = afero.NewMemMapFs()
		s.Console = &bytes.Buffer{}
		s.SpinnerWriter = io.Discard
	})

	err := svc.Run(context.Background(), inventory.Options{Selectors: []string{"eu-west-1"}, SkipFiles: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed during describing EC2 instances")
}

func TestServiceRunDrawNeedsFileOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	globals := stubGlobals(ctrl,
		ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
	)

	builder := &fakeBuilder{}
	renderer := &fakeRenderer{}
	svc := inventory.NewService(func(s *inventory.Service) {
		s.Loader = stubLoader(ctrl)
		s.RegionalClients = func(aws.Config) *inventory.Clients { return emptyRegionalClients(ctrl) }
		s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
		s.Prompter = mock_awsrc.NewMockPrompter(ctrl)
		s.Fs = afero.NewMemMapFs()
		s.Console = &bytes.Buffer{}
		s.SpinnerWriter = io.Discard
		s.GraphBuilder = builder
		s.GraphRenderer = renderer
	})

	err := svc.Run(context.Background(), inventory.Options{
		Selectors: []string{"eu-west-1"},
		Draw:      true,
		SkipFiles: true,
	})
	require.NoError(t, err)
	assert.Zero(t, renderer.calls, "renderer must not run without file output")
	assert.Nil(t, builder.inventories)
}

func TestServiceRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	globals := stubGlobals(ctrl,
		ec2types.Region{RegionName: aws.String("eu-west-1"), OptInStatus: aws.String("opt-in-not-required")},
		ec2types.Region{RegionName: aws.String("me-south-1"), OptInStatus: aws.String("not-opted-in")},
	)

	console := &bytes.Buffer{}
	svc := inventory.NewService(func(s *inventory.Service) {
		s.Loader = stubLoader(ctrl)
		s.GlobalClients = func(aws.Config) *inventory.Globals { return globals }
		s.Console = console
	})

	err := svc.Regions(context.Background(), inventory.Options{})
	require.NoError(t, err)
	assert.Contains(t, console.String(), "1: eu-west-1")
	assert.Contains(t, console.String(), "2: me-south-1 (not opted in)")
}
