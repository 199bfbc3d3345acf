package section

import (
	"fmt"
	"path/filepath"
)

// Section is one unit of dataset-driven analysis work, scoped to a
// year/month/name triple. Year and Name are taken verbatim from the user.
type Section struct {
	Year  string
	Month string
	Name  string
}

// New builds a Section from raw input. Only the month index is checked.
func New(year string, month int, name string) (*Section, error) {
	m, err := MonthName(month)
	if err != nil {
		return nil, fmt.Errorf("resolve month: %w", err)
	}
	return &Section{Year: year, Month: m, Name: name}, nil
}

// Dir returns <root>/<year>/<month>/<name>. Segments are not sanitized, so a
// name containing a separator nests further.
func (s *Section) Dir(root string) string {
	return filepath.Join(root, s.Year, s.Month, s.Name)
}

func (s *Section) String() string {
	return filepath.ToSlash(filepath.Join(s.Year, s.Month, s.Name))
}
