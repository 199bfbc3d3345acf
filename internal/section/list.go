package section

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// List returns every section found exactly three levels below the root that
// carries the README marker. Years and names sort lexically, months in
// calendar order with unrecognised month directories last.
func (s *Scaffolder) List() ([]*Section, error) {
	years, err := readSubdirs(s.fs, s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read projects root: %w", err)
	}
	var out []*Section
	for _, year := range years {
		monthDirs, err := readSubdirs(s.fs, filepath.Join(s.root, year))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", year, err)
		}
		sortMonths(monthDirs)
		for _, month := range monthDirs {
			names, err := readSubdirs(s.fs, filepath.Join(s.root, year, month))
			if err != nil {
				return nil, fmt.Errorf("read %s/%s: %w", year, month, err)
			}
			for _, name := range names {
				sec := &Section{Year: year, Month: month, Name: name}
				ok, err := afero.Exists(s.fs, filepath.Join(sec.Dir(s.root), s.readmeName()))
				if err != nil {
					return nil, fmt.Errorf("stat marker for %s: %w", sec, err)
				}
				if ok {
					out = append(out, sec)
				}
			}
		}
	}
	return out, nil
}

func readSubdirs(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func sortMonths(names []string) {
	rank := func(n string) int {
		if i, ok := MonthIndex(n); ok {
			return i
		}
		return len(months) + 1
	}
	sort.SliceStable(names, func(i, j int) bool {
		return rank(names[i]) < rank(names[j])
	})
}
