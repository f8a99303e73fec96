package graph

import (
	"fmt"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/utils/common"
)

// Renderer rasterizes a written DOT file with the local graphviz binary.
type Renderer struct {
	Executor common.CommandExecutor
}

func NewRenderer(executor common.CommandExecutor) *Renderer {
	if executor == nil {
		executor = &common.RealCommandExecutor{}
	}
	return &Renderer{Executor: executor}
}

// Render converts dotPath into imagePath. A missing graphviz install is not
// an error: the .dot file stays behind and the skip is logged. Returns
// whether an image was produced.
func (r *Renderer) Render(dotPath, imagePath, format string) (bool, error) {
	if _, err := r.Executor.LookPath("dot"); err != nil {
		log.Warnf("graphviz not found; skipping %s render, kept %s", format, dotPath)
		return false, nil
	}

	if _, err := r.Executor.RunCommand("dot", "-T"+format, dotPath, "-o", imagePath); err != nil {
		return false, fmt.Errorf("failed to render %s: %w", imagePath, err)
	}
	return true, nil
}
