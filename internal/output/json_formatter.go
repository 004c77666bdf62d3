package output

import (
	"encoding/json"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
)

// JSONFormatter serializes output as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(trajectory *domain.Trajectory) ([]byte, error) {
	return json.MarshalIndent(trajectory, "", "  ")
}

func (j JSONFormatter) FormatComparison(comparison *domain.Comparison) ([]byte, error) {
	return json.MarshalIndent(comparison, "", "  ")
}
