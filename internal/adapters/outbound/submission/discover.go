package submission

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abscore/abscore/internal/domain"
)

// Directory layout of a team submission.
const (
	ExtractedDir   = "_extracted"
	StructuresDir  = "structures"
	SequencesDir   = "sequences"
	MetricsDir     = "metrics"
	complexSuffix  = "_complex.pdb"
	paeSuffix      = "_pae.json"
	fastaExtension = ".fasta"
)

// challengeDirs maps the per-team directory suffix to the challenge id.
var challengeDirs = []struct {
	suffix string
	id     string
}{
	{"_Challenge1", "challenge1"},
	{"_Challenge2", "challenge2"},
}

// Source implements domain.SubmissionSource over a directory of team folders
// and team zip archives.
type Source struct {
	natives map[string]string
	logger  *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithNatives attaches a native complex to every design of a challenge.
// Challenge keys are matched case-insensitively.
func WithNatives(natives map[string]string) Option {
	return func(s *Source) {
		s.natives = make(map[string]string, len(natives))
		for ch, path := range natives {
			s.natives[strings.ToLower(ch)] = path
		}
	}
}

// WithLogger sets the logger used for skipped designs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		s.logger = l
	}
}

// New creates a Source.
func New(opts ...Option) *Source {
	s := &Source{logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Discover walks root for team roots, then each team's challenge folders,
// then the designs inside each. Designs missing a core file are skipped.
func (s *Source) Discover(root string) ([]domain.DesignInput, error) {
	teams, err := s.teamRoots(root)
	if err != nil {
		return nil, err
	}

	var designs []domain.DesignInput
	for _, teamRoot := range teams {
		team := filepath.Base(teamRoot)
		found := false
		for _, ch := range challengeDirs {
			dir := filepath.Join(teamRoot, team+ch.suffix)
			if !isDir(dir) {
				continue
			}
			found = true
			ds, err := s.challengeDesigns(team, ch.id, dir)
			if err != nil {
				s.logger.Warn("skipping challenge folder", "team", team, "dir", dir, "error", err)
				continue
			}
			designs = append(designs, ds...)
		}
		if !found {
			s.logger.Warn("no challenge folders found", "team", team, "dir", teamRoot)
		}
	}
	return designs, nil
}

// teamRoots lists team directories and extracts team zips under
// root/_extracted. Hidden and underscore-prefixed entries are not teams.
func (s *Source) teamRoots(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading submissions root: %w", err)
	}

	var roots []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		full := filepath.Join(root, name)
		switch {
		case e.IsDir():
			roots = append(roots, full)
		case strings.EqualFold(filepath.Ext(name), ".zip"):
			teamDir, err := extractTeamZip(full, filepath.Join(root, ExtractedDir))
			if err != nil {
				s.logger.Warn("skipping archive", "path", full, "error", err)
				continue
			}
			roots = append(roots, teamDir)
		}
	}
	sort.Strings(roots)
	return roots, nil
}

func (s *Source) challengeDesigns(team, challenge, dir string) ([]domain.DesignInput, error) {
	structDir := filepath.Join(dir, StructuresDir)
	entries, err := os.ReadDir(structDir)
	if err != nil {
		return nil, fmt.Errorf("%w: no %s directory", domain.ErrMissingInput, StructuresDir)
	}

	var ids []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), complexSuffix) {
			ids = append(ids, strings.TrimSuffix(e.Name(), complexSuffix))
		}
	}
	sort.Strings(ids)

	var out []domain.DesignInput
	for _, id := range ids {
		d := domain.DesignInput{
			Team:          team,
			DesignID:      id,
			Challenge:     challenge,
			ComplexPDB:    filepath.Join(structDir, id+complexSuffix),
			PAEJSON:       filepath.Join(structDir, id+paeSuffix),
			FASTA:         filepath.Join(dir, SequencesDir, id+fastaExtension),
			NativeComplex: s.natives[challenge],
			Dir:           dir,
		}
		if missing := missingFiles(d); len(missing) > 0 {
			s.logger.Warn("skipping design", "team", team, "design", id, "missing", missing)
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func missingFiles(d domain.DesignInput) []string {
	var missing []string
	for _, p := range []string{d.PAEJSON, d.FASTA} {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, filepath.Base(p))
		}
	}
	return missing
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
