package output

import (
	"sort"
	"strings"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
)

// Formatter defines a pluggable renderer for a calculated case result.
// Implementations must be pure: deterministic bytes from identical results,
// no side effects. Formatters render the engine's raw figures; no calculation
// logic lives here.
type Formatter interface {
	Format(result *domain.CaseResult) ([]byte, error)
	// Name returns the canonical identifier used on the command line.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"csv-summary": "csv",
	"json-pretty": "json",
	"snapshot":    "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
