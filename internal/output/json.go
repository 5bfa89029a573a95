package output

import (
	"encoding/json"

	"github.com/proforma/proforma/internal/domain"
)

// JSONFormatter marshals the full report structure.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) Format(report *domain.AnalysisReport) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
