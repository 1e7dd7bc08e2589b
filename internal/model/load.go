package model

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQuestionnaireFile reads and validates a questionnaire definition
// from disk. Files ending in .yaml or .yml are parsed as YAML; anything
// else is treated as JSON.
func LoadQuestionnaireFile(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire definition: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &ValidationError{Issues: []FieldError{{
				Field:   "questionnaire",
				Message: fmt.Sprintf("invalid YAML: %v", err),
			}}}
		}
		return DecodeQuestionnaire(raw)
	default:
		return ParseQuestionnaire(data)
	}
}
