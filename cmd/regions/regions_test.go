package regions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ShifengHuGit/AWSResourceCollection/cmd/regions"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/config"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	mock_awsrc "github.com/ShifengHuGit/AWSResourceCollection/tests/mock"
	mock_inventory "github.com/ShifengHuGit/AWSResourceCollection/tests/mock/inventory"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionsCmd(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(*mock_inventory.MockServiceInterface)
		expectedError error
	}{
		{
			name: "successful listing",
			mockSetup: func(mockSvc *mock_inventory.MockServiceInterface) {
				mockSvc.EXPECT().Regions(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "service error",
			mockSetup: func(mockSvc *mock_inventory.MockServiceInterface) {
				mockSvc.EXPECT().Regions(gomock.Any(), gomock.Any()).Return(errors.New("listing failed"))
			},
			expectedError: errors.New("listing failed"),
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

			deps := regions.Dependencies{
				Service: mockService,
				Signals: mockSignals,
			}

			cmd := regions.NewRegionsCmd(deps)
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

func TestRegionsCmdOptions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		config   *config.Config
		expected inventory.Options
	}{
		{
			name:     "profile flag",
			args:     []string{"--profile", "prod"},
			expected: inventory.Options{Profile: "prod"},
		},
		{
			name: "profile and credentials from config",
			args: []string{},
			config: func() *config.Config {
				cfg := &config.Config{}
				cfg.Aws.Profile = "dev"
				cfg.Aws.AccessKeyID = "AKIAEXAMPLE"
				cfg.Aws.SecretAccessKey = "secret"
				return cfg
			}(),
			expected: inventory.Options{
				Profile:         "dev",
				AccessKeyID:     "AKIAEXAMPLE",
				SecretAccessKey: "secret",
			},
		},
		{
			name: "flag wins over config profile",
			args: []string{"--profile", "prod"},
			config: func() *config.Config {
				cfg := &config.Config{}
				cfg.Aws.Profile = "dev"
				return cfg
			}(),
			expected: inventory.Options{Profile: "prod"},
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
			mockService.EXPECT().Regions(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, opts inventory.Options) error {
					captured = opts
					return nil
				})

			deps := regions.Dependencies{
				Service: mockService,
				Signals: mockSignals,
				Config:  tt.config,
			}

			cmd := regions.NewRegionsCmd(deps)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.expected, captured)
		})
	}
}
