package importer

import (
	"fmt"
	"time"

	"github.com/pvlab/helios/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Nodes) == 0 {
		errs = append(errs, fmt.Errorf("import file contains no nodes"))
		return errs
	}

	ids := make(map[string]bool)
	for i, n := range schema.Nodes {
		ref := n.ID
		if ref == "" {
			ref = fmt.Sprintf("nodes[%d]", i)
			errs = append(errs, fmt.Errorf("%s: id is required", ref))
		} else if ids[n.ID] {
			errs = append(errs, fmt.Errorf("node %s: duplicate id", n.ID))
		}
		ids[n.ID] = true

		errs = append(errs, validateNode(ref, &n)...)
	}

	for _, n := range schema.Nodes {
		if n.ParentID != nil && !ids[*n.ParentID] {
			errs = append(errs, fmt.Errorf("node %s: parent %q not found in import file", n.ID, *n.ParentID))
		}
		for _, dep := range n.Dependencies {
			if !ids[dep] {
				errs = append(errs, fmt.Errorf("node %s: dependency %q not found in import file", n.ID, dep))
			}
		}
	}

	return errs
}

func validateNode(ref string, n *NodeImport) []error {
	var errs []error

	if n.Name == "" {
		errs = append(errs, fmt.Errorf("node %s: name is required", ref))
	}
	if !domain.ValidNodeKinds[n.Kind] {
		errs = append(errs, fmt.Errorf("node %s: invalid kind %q", ref, n.Kind))
	}
	if n.Status != "" && !domain.ValidNodeStatuses[n.Status] {
		errs = append(errs, fmt.Errorf("node %s: invalid status %q", ref, n.Status))
	}
	if n.Progress < 0 || n.Progress > 100 {
		errs = append(errs, fmt.Errorf("node %s: progress %.1f out of range [0, 100]", ref, n.Progress))
	}
	if n.DurationDays < 0 {
		errs = append(errs, fmt.Errorf("node %s: duration_days must not be negative", ref))
	}
	if n.IsMilestone && n.DurationDays != 0 {
		errs = append(errs, fmt.Errorf("node %s: milestone must have duration_days 0", ref))
	}
	if n.Budget < 0 {
		errs = append(errs, fmt.Errorf("node %s: budget must not be negative", ref))
	}
	if n.ActualCost < 0 {
		errs = append(errs, fmt.Errorf("node %s: actual_cost must not be negative", ref))
	}

	start := validateDate(ref, "start_date", n.StartDate, &errs)
	end := validateDate(ref, "end_date", n.EndDate, &errs)
	if start != nil && end != nil && end.Before(*start) {
		errs = append(errs, fmt.Errorf("node %s: end_date %q before start_date %q", ref, n.EndDate, n.StartDate))
	}

	return errs
}

func validateDate(ref, field, value string, errs *[]error) *time.Time {
	if value == "" {
		*errs = append(*errs, fmt.Errorf("node %s: %s is required", ref, field))
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("node %s: %s: invalid date format %q (expected YYYY-MM-DD)", ref, field, value))
		return nil
	}
	return &t
}
