package gen

import (
	"fmt"
	"go/token"

	"github.com/go-openapi/inflect"
)

// titleCase capitalizes the first letter of a string. Entity names are
// capitalized on intake, so "directory" and "Directory" compile to the
// same artifacts.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return inflect.Capitalize(s)
}

// pascal converts a separator-delimited name to PascalCase with the
// separators removed: "parent_directory" becomes "ParentDirectory".
func pascal(s string) string {
	return inflect.Camelize(s)
}

// camelDown converts a separator-delimited name to lowerCamelCase for
// unexported struct fields, avoiding Go keywords.
func camelDown(s string) string {
	name := inflect.CamelizeDownFirst(s)
	if token.Lookup(name).IsKeyword() {
		return "_" + name
	}
	return name
}

// validEntityName ensures an entity name produces valid Go type names.
func validEntityName(name string) error {
	if name == "" {
		return fmt.Errorf("entity name cannot be empty")
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("entity name %q is not a valid identifier", name)
	}
	return nil
}
