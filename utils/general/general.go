package generalutils

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"syscall"
)

type GeneralUtilsInterface interface {
	HandleSignals() context.Context
}

type DefaultGeneralUtilsManager struct{}

func (g *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

var regionFormatRegex = regexp.MustCompile(`^[a-z]{2}-[a-z]+-\d+$`)

// IsValidRegionFormat is a syntactic check only; matching against the
// account's real region list happens during resolution.
func IsValidRegionFormat(region string) bool {
	return regionFormatRegex.MatchString(region)
}
