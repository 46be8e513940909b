package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/Sandeep0076/budget-sage/internal/logging"
)

// Generator renders computed reports in the supported output formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Render serializes a report in the requested format (json or xml).
// It returns the report as a byte slice and an error if rendering fails
// or the format is unsupported.
func (g *Generator) Render(report interface{}, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.renderJSON(report)
	case "xml":
		return g.renderXML(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(report interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) renderXML(report interface{}) ([]byte, error) {
	out, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(out)), nil
}
