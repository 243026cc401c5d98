package msitab

import "fmt"

// Category is the storage classification a schema author assigns to a
// column. Integer and DoubleInteger resolve to fixed-width integer
// columns; every other category is a string column with an explicit
// maximum length.
type Category uint8

const (
	// CategoryNone is the zero value; it is never a valid column category.
	CategoryNone Category = iota
	CategoryText
	CategoryUpperCase
	CategoryLowerCase
	CategoryInteger
	CategoryDoubleInteger
	CategoryTimeDate
	CategoryIdentifier
	CategoryProperty
	CategoryFilename
	CategoryWildCardFilename
	CategoryPath
	CategoryPaths
	CategoryAnyPath
	CategoryDefaultDir
	CategoryRegPath
	CategoryFormatted
	CategoryTemplate
	CategoryCondition
	CategoryGUID
	CategoryVersion
	CategoryLanguage
	CategoryBinary
	CategoryCustomSource
	CategoryCabinet
	CategoryShortcut
)

var categoryNames = map[Category]string{
	CategoryText:             "Text",
	CategoryUpperCase:        "UpperCase",
	CategoryLowerCase:        "LowerCase",
	CategoryInteger:          "Integer",
	CategoryDoubleInteger:    "DoubleInteger",
	CategoryTimeDate:         "TimeDate",
	CategoryIdentifier:       "Identifier",
	CategoryProperty:         "Property",
	CategoryFilename:         "Filename",
	CategoryWildCardFilename: "WildCardFilename",
	CategoryPath:             "Path",
	CategoryPaths:            "Paths",
	CategoryAnyPath:          "AnyPath",
	CategoryDefaultDir:       "DefaultDir",
	CategoryRegPath:          "RegPath",
	CategoryFormatted:        "Formatted",
	CategoryTemplate:         "Template",
	CategoryCondition:        "Condition",
	CategoryGUID:             "Guid",
	CategoryVersion:          "Version",
	CategoryLanguage:         "Language",
	CategoryBinary:           "Binary",
	CategoryCustomSource:     "CustomSource",
	CategoryCabinet:          "Cabinet",
	CategoryShortcut:         "Shortcut",
}

// Valid reports whether c is a recognized category.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// FixedWidth reports whether c resolves to a fixed-width integer column
// and therefore needs no declared length.
func (c Category) FixedWidth() bool {
	return c == CategoryInteger || c == CategoryDoubleInteger
}

// String returns the category's canonical name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory resolves a canonical category name.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("msitab: unrecognized category %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("msitab: cannot marshal invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
