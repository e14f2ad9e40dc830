package nav

import "fmt"

// IssueKind classifies a Lint finding.
type IssueKind string

const (
	IssueNoActive       IssueKind = "no_active"
	IssueMultipleActive IssueKind = "multiple_active"
	IssueDuplicateName  IssueKind = "duplicate_name"
	IssueEmptyName      IssueKind = "empty_name"
)

// Issue is a non-fatal problem found in an entry list.
type Issue struct {
	Kind    IssueKind `json:"kind" yaml:"kind"`
	Index   int       `json:"index" yaml:"index"`
	Message string    `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}

// Lint reports entries that break the one-active-entry and unique-name
// expectations. Initialize accepts such lists anyway.
func Lint(entries []Entry) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(entries))
	var active []int

	for i, e := range entries {
		if e.Name == "" {
			issues = append(issues, Issue{
				Kind:    IssueEmptyName,
				Index:   i,
				Message: fmt.Sprintf("entry %d has no name and can never be selected", i),
			})
		} else if first, ok := seen[e.Name]; ok {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateName,
				Index:   i,
				Message: fmt.Sprintf("entry %d reuses the name %q of entry %d; selecting it activates both", i, e.Name, first),
			})
		} else {
			seen[e.Name] = i
		}
		if e.Active {
			active = append(active, i)
		}
	}

	switch {
	case len(entries) > 0 && len(active) == 0:
		issues = append(issues, Issue{
			Kind:    IssueNoActive,
			Index:   -1,
			Message: "no entry starts active",
		})
	case len(active) > 1:
		issues = append(issues, Issue{
			Kind:    IssueMultipleActive,
			Index:   active[1],
			Message: fmt.Sprintf("%d entries start active (indexes %v)", len(active), active),
		})
	}

	return issues
}
