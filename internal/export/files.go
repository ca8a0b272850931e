package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arkode-mx/odooplan/internal/domain"
)

// WriteFiles writes the three import CSVs into dir, named after the
// sanitized project name. It returns the paths written.
func WriteFiles(dir string, p *domain.Project, plan *domain.Plan) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	base := SanitizeFilename(plan.ProjectName)
	files := []struct {
		suffix string
		write  func(f *os.File) error
	}{
		{"project", func(f *os.File) error { return WriteProject(f, p, plan) }},
		{"milestones", func(f *os.File) error { return WriteMilestones(f, plan) }},
		{"tasks", func(f *os.File) error { return WriteTasks(f, plan) }},
	}

	paths := make([]string, 0, len(files))
	for _, spec := range files {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", base, spec.suffix))
		f, err := os.Create(path)
		if err != nil {
			return paths, fmt.Errorf("creating %s: %w", path, err)
		}
		if err := spec.write(f); err != nil {
			f.Close()
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, fmt.Errorf("closing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
