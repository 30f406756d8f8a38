package progress

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrInvalidLevel   = errors.New("level index out of range")
	ErrUnknownBoss    = errors.New("unknown boss type")
	ErrUnknownLevelID = errors.New("unknown level identifier")
	ErrCorruptRecord  = errors.New("corrupt progress record")
	ErrReadOnly       = errors.New("progress opened read-only")
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	// SeverityFatal marks an initialization-order bug that retries could not
	// recover from.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a recoverable problem surfaced to logs and to an optional sink.
type Diagnostic struct {
	Severity Severity
	Op       string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %v", d.Severity, d.Op, d.Err)
}

// Report logs d under the given subsystem tag and forwards it to sink.
func Report(tag string, sink func(Diagnostic), d Diagnostic) {
	log.Printf("[%s] %s", tag, d)
	if sink != nil {
		sink(d)
	}
}
