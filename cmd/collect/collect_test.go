package collect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ShifengHuGit/AWSResourceCollection/cmd/collect"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/config"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	mock_awsrc "github.com/ShifengHuGit/AWSResourceCollection/tests/mock"
	mock_inventory "github.com/ShifengHuGit/AWSResourceCollection/tests/mock/inventory"
	promptutils "github.com/ShifengHuGit/AWSResourceCollection/utils/prompt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectCmd(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(*mock_inventory.MockServiceInterface)
		expectedError error
	}{
		{
			name: "successful execution",
			mockSetup: func(mockSvc *mock_inventory.MockServiceInterface) {
				mockSvc.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "user interruption",
			mockSetup: func(mockSvc *mock_inventory.MockServiceInterface) {
				mockSvc.EXPECT().Run(gomock.Any(), gomock.Any()).Return(promptutils.ErrInterrupted)
			},
			expectedError: nil,
		},
		{
			name: "service error",
			mockSetup: func(mockSvc *mock_inventory.MockServiceInterface) {
				mockSvc.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("collection failed"))
			},
			expectedError: errors.New("collection failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock_inventory.NewMockServiceInterface(ctrl)
			mockSignals := mock_awsrc.NewMockGeneralUtilsInterface(ctrl)
			mockSignals.EXPECT().HandleSignals().Return(context.Background())
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}

			deps := collect.Dependencies{
				Service: mockService,
				Signals: mockSignals,
			}

			cmd := collect.NewCollectCmd(deps)
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCollectCmdConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := collect.Dependencies{
		Service: mock_inventory.NewMockServiceInterface(ctrl),
		Signals: mock_awsrc.NewMockGeneralUtilsInterface(ctrl),
	}

	cmd := collect.NewCollectCmd(deps)

	assert.Equal(t, "collect", cmd.Use)
	assert.Equal(t, "Collect and report AWS resources", cmd.Short)
	assert.Contains(t, cmd.Long, "aligned tables")
	assert.True(t, cmd.SilenceUsage)
	assert.NotNil(t, cmd.RunE)

	for _, name := range []string{"region", "all", "draw", "profile", "output-dir", "no-files", "graph-format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should be registered", name)
	}
	assert.Equal(t, "r", cmd.Flags().Lookup("region").Shorthand)
	assert.Equal(t, "d", cmd.Flags().Lookup("draw").Shorthand)
	assert.Equal(t, "o", cmd.Flags().Lookup("output-dir").Shorthand)
}

func TestCollectCmdOptions(t *testing.T) {
	fileConfig := func() *config.Config {
		cfg := &config.Config{}
		cfg.Aws.Profile = "dev"
		cfg.Aws.Regions = []string{"ap-south-1"}
		cfg.Output.Directory = "reports"
		cfg.Output.Placeholder = "-"
		cfg.Graph.Format = "png"
		return cfg
	}

	tests := []struct {
		name     string
		args     []string
		config   *config.Config
		expected inventory.Options
	}{
		{
			name: "flags only",
			args: []string{"-r", "us-east-1,eu-west-1", "--draw", "-o", "/tmp/reports", "--graph-format", "svg"},
			expected: inventory.Options{
				Selectors:   []string{"us-east-1", "eu-west-1"},
				Draw:        true,
				OutputDir:   "/tmp/reports",
				GraphFormat: "svg",
			},
		},
		{
			name:   "config supplies defaults",
			args:   []string{},
			config: fileConfig(),
			expected: inventory.Options{
				Profile:     "dev",
				Selectors:   []string{"ap-south-1"},
				OutputDir:   "reports",
				Placeholder: "-",
				GraphFormat: "png",
			},
		},
		{
			name:   "flags override config",
			args:   []string{"--profile", "prod", "-r", "us-west-2"},
			config: fileConfig(),
			expected: inventory.Options{
				Profile:     "prod",
				Selectors:   []string{"us-west-2"},
				OutputDir:   "reports",
				Placeholder: "-",
				GraphFormat: "png",
			},
		},
		{
			name:   "all regions ignores configured selectors",
			args:   []string{"--all"},
			config: fileConfig(),
			expected: inventory.Options{
				Profile:     "dev",
				AllRegions:  true,
				OutputDir:   "reports",
				Placeholder: "-",
				GraphFormat: "png",
			},
		},
		{
			name: "static credentials from config",
			args: []string{"-r", "us-east-1"},
			config: func() *config.Config {
				cfg := &config.Config{}
				cfg.Aws.AccessKeyID = "AKIAEXAMPLE"
				cfg.Aws.SecretAccessKey = "secret"
				return cfg
			}(),
			expected: inventory.Options{
				Selectors:       []string{"us-east-1"},
				AccessKeyID:     "AKIAEXAMPLE",
				SecretAccessKey: "secret",
			},
		},
		{
			name: "no-files disables artifacts",
			args: []string{"--no-files"},
			expected: inventory.Options{
				SkipFiles: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock_inventory.NewMockServiceInterface(ctrl)
			mockSignals := mock_awsrc.NewMockGeneralUtilsInterface(ctrl)
			mockSignals.EXPECT().HandleSignals().Return(context.Background())

			var captured inventory.Options
			mockService.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, opts inventory.Options) error {
					captured = opts
					return nil
				})

			deps := collect.Dependencies{
				Service: mockService,
				Signals: mockSignals,
				Config:  tt.config,
			}

			cmd := collect.NewCollectCmd(deps)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.expected, captured)
		})
	}
}
