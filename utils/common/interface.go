package common

// CommandExecutor abstracts external process execution so callers can be
// tested without a real binary on PATH.
type CommandExecutor interface {
	RunCommand(name string, args ...string) ([]byte, error)
	LookPath(file string) (string, error)
}
