package output

import (
	gojson "github.com/goccy/go-json"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
)

// JSONFormatter renders the complete case result as an indented JSON
// snapshot, the interchange form consumed by downstream serializers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.CaseResult) ([]byte, error) {
	return gojson.MarshalIndent(result, "", "  ")
}
