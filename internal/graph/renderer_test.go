package graph_test

import (
	"errors"
	"testing"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/graph"
	mock_awsrc "github.com/ShifengHuGit/AWSResourceCollection/tests/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererRender(t *testing.T) {
	t.Run("renders image when graphviz is installed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		executor := mock_awsrc.NewMockCommandExecutor(ctrl)
		executor.EXPECT().LookPath("dot").Return("/usr/bin/dot", nil)
		executor.EXPECT().
			RunCommand("dot", "-Tpng", "topo.dot", "-o", "topo.png").
			Return([]byte{}, nil)

		rendered, err := graph.NewRenderer(executor).Render("topo.dot", "topo.png", "png")
		require.NoError(t, err)
		assert.True(t, rendered)
	})

	t.Run("missing graphviz skips the render", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		executor := mock_awsrc.NewMockCommandExecutor(ctrl)
		executor.EXPECT().LookPath("dot").Return("", errors.New("executable file not found in $PATH"))

		rendered, err := graph.NewRenderer(executor).Render("topo.dot", "topo.png", "png")
		require.NoError(t, err)
		assert.False(t, rendered)
	})

	t.Run("render failure surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		executor := mock_awsrc.NewMockCommandExecutor(ctrl)
		executor.EXPECT().LookPath("dot").Return("/usr/bin/dot", nil)
		executor.EXPECT().
			RunCommand("dot", "-Tsvg", "topo.dot", "-o", "topo.svg").
			Return(nil, errors.New("exit status 1"))

		rendered, err := graph.NewRenderer(executor).Render("topo.dot", "topo.svg", "svg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to render topo.svg")
		assert.False(t, rendered)
	})
}

func TestNewRendererDefaultExecutor(t *testing.T) {
	r := graph.NewRenderer(nil)
	assert.NotNil(t, r.Executor)
}
