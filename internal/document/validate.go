package document

import "fmt"

// Top-level namespaces the cleaner expects to find.
const (
	ProjectsKey = "projects"
)

// globalSettingsKeys lists the accepted names for the global-settings
// namespace. At least one must be present for the document to be considered
// structurally complete.
var globalSettingsKeys = []string{"userSettings", "globalSettings", "settings"}

// StructuralWarning flags a missing or unexpected top-level namespace.
// Warnings are collected, not raised; the cleaner proceeds on the parts
// that are present.
type StructuralWarning struct {
	// Namespace is the top-level key the warning concerns.
	Namespace string `json:"namespace"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// String implements fmt.Stringer.
func (w StructuralWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Namespace, w.Message)
}

// Validate checks the top-level structure of a configuration document and
// returns non-fatal warnings. A missing namespace is flagged but never
// created; the cleaner must not fabricate structure that was not on disk.
func Validate(doc *Object) []StructuralWarning {
	var warnings []StructuralWarning

	projects, ok := doc.Get(ProjectsKey)
	switch {
	case !ok:
		warnings = append(warnings, StructuralWarning{
			Namespace: ProjectsKey,
			Message:   "expected namespace is missing",
		})
	default:
		if _, isObj := projects.(*Object); !isObj {
			warnings = append(warnings, StructuralWarning{
				Namespace: ProjectsKey,
				Message:   "expected a mapping of project records",
			})
		}
	}

	if !hasGlobalSettings(doc) {
		warnings = append(warnings, StructuralWarning{
			Namespace: "userSettings",
			Message:   "no global settings namespace found",
		})
	}

	return warnings
}

func hasGlobalSettings(doc *Object) bool {
	for _, key := range globalSettingsKeys {
		if doc.Has(key) {
			return true
		}
	}
	return false
}
