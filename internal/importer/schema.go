package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for WBS bulk import.
type ImportSchema struct {
	Nodes []NodeImport `json:"nodes"`
}

// NodeImport defines one WBS node in the import file. Dates use the
// 2006-01-02 layout. Level is derived from the parent chain and must not
// be supplied.
type NodeImport struct {
	ID           string   `json:"id"`
	ParentID     *string  `json:"parent_id,omitempty"`
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	DurationDays int      `json:"duration_days"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Assignee     string   `json:"assignee,omitempty"`
	Status       string   `json:"status,omitempty"` // defaults to not_started
	Progress     float64  `json:"progress,omitempty"`
	Budget       float64  `json:"budget,omitempty"`
	ActualCost   float64  `json:"actual_cost,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	IsMilestone  bool     `json:"is_milestone,omitempty"`
	IsCritical   bool     `json:"is_critical,omitempty"`
	Order        int      `json:"order,omitempty"`
}

// LoadImportSchema reads and decodes an import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
