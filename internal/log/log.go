package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init configures apex/log with a single-line handler writing to stderr so
// diagnostics never leak into the report stream, which is tee'd to a file.
// The level comes from the AWSRC_LOG environment variable and defaults to
// warn.
func Init() {
	level := strings.ToLower(os.Getenv("AWSRC_LOG"))
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn", "":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
	log.SetHandler(&lineHandler{})
}

// lineHandler writes "<ts> <LEVEL> <msg> k=v ..." lines to stderr.
type lineHandler struct{}

func (h *lineHandler) HandleLog(e *log.Entry) error {
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(e.Level.String()))
	b.WriteByte(' ')
	b.WriteString(e.Message)
	for _, f := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", f, e.Fields.Get(f))
	}
	fmt.Fprintln(os.Stderr, b.String())
	return nil
}

func Debugf(format string, args ...interface{}) { log.Debugf(format, args...) }

func Infof(format string, args ...interface{}) { log.Infof(format, args...) }

func Warnf(format string, args ...interface{}) { log.Warnf(format, args...) }

func Errorf(format string, args ...interface{}) { log.Errorf(format, args...) }

// WithError returns an entry carrying err for contextual logging.
func WithError(err error) *log.Entry { return log.WithError(err) }
