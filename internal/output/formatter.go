package output

import (
	"fmt"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
)

// Formatter renders a trajectory for a given output format. Implementations
// should be pure (deterministic formatting, no side effects).
type Formatter interface {
	Format(trajectory *domain.Trajectory) ([]byte, error)
	// Name returns a short identifier for flag values and logging.
	Name() string
}

// ComparisonFormatter renders a scenario comparison.
type ComparisonFormatter interface {
	FormatComparison(comparison *domain.Comparison) ([]byte, error)
	Name() string
}

var builtInFormatters = []Formatter{
	JSONFormatter{},
	CSVFormatter{},
	ConsoleFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q (want json, csv, or summary)", name)
}
