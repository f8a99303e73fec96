package root

import (
	"bytes"
	"errors"
	"testing"

	mock_awsrc "github.com/ShifengHuGit/AWSResourceCollection/tests/mock"
	mock_inventory "github.com/ShifengHuGit/AWSResourceCollection/tests/mock/inventory"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_inventory.NewMockServiceInterface(ctrl)
	mockSignals := mock_awsrc.NewMockGeneralUtilsInterface(ctrl)

	rootCmd := NewRootCmd(mockService, mockSignals, nil)

	assert.Equal(t, "awsrc", rootCmd.Use)
	assert.Equal(t, "AWS resource inventory reporter", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "topology graph")
	assert.NotEmpty(t, rootCmd.Version)
}

func TestRootCommandStructure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_inventory.NewMockServiceInterface(ctrl)
	mockSignals := mock_awsrc.NewMockGeneralUtilsInterface(ctrl)

	rootCmd := NewRootCmd(mockService, mockSignals, nil)

	var haveCollect, haveRegions bool
	for _, cmd := range rootCmd.Commands() {
		switch cmd.Use {
		case "collect":
			haveCollect = true
		case "regions":
			haveRegions = true
		}
	}
	assert.True(t, haveCollect, "collect command should be registered under root")
	assert.True(t, haveRegions, "regions command should be registered under root")
}

func TestRootCmd_Execution(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedErr    error
	}{
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage:",
			expectedErr:    nil,
		},
		{
			name:           "no args shows help",
			args:           []string{},
			expectedOutput: "Usage:",
			expectedErr:    nil,
		},
		{
			name:           "invalid command",
			args:           []string{"invalid"},
			expectedOutput: "unknown command",
			expectedErr:    errors.New("unknown command"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock_inventory.NewMockServiceInterface(ctrl)
			mockSignals := mock_awsrc.NewMockGeneralUtilsInterface(ctrl)

			rootCmd := NewRootCmd(mockService, mockSignals, nil)

			var outBuf bytes.Buffer
			rootCmd.SetOut(&outBuf)
			rootCmd.SetErr(&outBuf)

			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				require.NoError(t, err)
			}

			if tt.expectedOutput != "" {
				assert.Contains(t, outBuf.String(), tt.expectedOutput)
			}
		})
	}
}
