package main

import (
	"fmt"
	"os"

	"github.com/ShifengHuGit/AWSResourceCollection/cmd/root"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/config"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/inventory"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/internal/version"
	generalutils "github.com/ShifengHuGit/AWSResourceCollection/utils/general"
	"github.com/spf13/afero"
)

func main() {
	log.Init()

	cfg, err := config.Load(afero.NewOsFs())
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	service := inventory.NewService(func(s *inventory.Service) {
		s.Version = version.Version
	})

	if err := root.NewRootCmd(service, generalutils.NewGeneralUtilsManager(), cfg).Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
