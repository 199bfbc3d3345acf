package section

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/tidyweek-cli/internal/utils"
	"github.com/spf13/afero"
)

const (
	readmeFileName = "README.md"
)

// DefaultSubdirs are created under every section, in this order.
var DefaultSubdirs = []string{"r", "python", "static"}

// Layout lists the paths making up one section scaffold.
type Layout struct {
	Dir     string
	Subdirs []string
	Readme  string
}

// Scaffolder creates section skeletons under a projects root.
type Scaffolder struct {
	Subdirs    []string
	ReadmeName string

	fs   afero.Fs
	root string
	log  *slog.Logger
}

// NewScaffolder returns a Scaffolder with the default layout. A nil logger
// discards output.
func NewScaffolder(fs afero.Fs, root string, log *slog.Logger) *Scaffolder {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{
		Subdirs:    append([]string(nil), DefaultSubdirs...),
		ReadmeName: readmeFileName,
		fs:         fs,
		root:       root,
		log:        log,
	}
}

// Root returns the projects root the scaffolder writes under.
func (s *Scaffolder) Root() string { return s.root }

// Plan computes the layout for sec without touching the filesystem.
func (s *Scaffolder) Plan(sec *Section) Layout {
	dir := sec.Dir(s.root)
	l := Layout{Dir: dir, Readme: filepath.Join(dir, s.readmeName())}
	for _, sub := range s.Subdirs {
		l.Subdirs = append(l.Subdirs, filepath.Join(dir, sub))
	}
	return l
}

// Scaffold creates each subdirectory (parents included, existing ones
// accepted) and then creates or truncates the README marker. The first
// failure stops the sequence; anything already created is left in place.
func (s *Scaffolder) Scaffold(sec *Section) (Layout, error) {
	l := s.Plan(sec)
	for _, dir := range l.Subdirs {
		s.log.Debug("create directory", "path", dir)
		if err := utils.EnsureDir(s.fs, dir); err != nil {
			return l, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	s.log.Debug("create readme", "path", l.Readme)
	f, err := s.fs.OpenFile(l.Readme, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return l, fmt.Errorf("create %s: %w", l.Readme, err)
	}
	if err := f.Close(); err != nil {
		return l, fmt.Errorf("close %s: %w", l.Readme, err)
	}
	s.log.Info("section scaffolded", "section", sec.String(), "dir", l.Dir)
	return l, nil
}

func (s *Scaffolder) readmeName() string {
	if s.ReadmeName == "" {
		return readmeFileName
	}
	return s.ReadmeName
}
