package orchestrator

import (
	"os"

	"github.com/goliatone/go-noticegen/pkg/convert"
	"github.com/goliatone/go-noticegen/pkg/notice"
)

// Artifact records the outcome of a single form × format conversion.
type Artifact struct {
	Kind   notice.Kind
	Format convert.Format
	Path   string
	Exists bool
	Size   int64
}

// Report is the result of a fixture run: one artifact entry per requested
// form × format combination, verified against the filesystem.
type Report struct {
	OutputDir string
	Artifacts []Artifact
}

// Missing returns the paths of artifacts that were not produced or are empty.
func (r Report) Missing() []string {
	var missing []string
	for _, a := range r.Artifacts {
		if !a.Exists || a.Size == 0 {
			missing = append(missing, a.Path)
		}
	}
	return missing
}

// OK reports whether every expected artifact exists and is non-empty.
func (r Report) OK() bool {
	return len(r.Artifacts) > 0 && len(r.Missing()) == 0
}

func inspectArtifact(kind notice.Kind, format convert.Format, path string) Artifact {
	artifact := Artifact{Kind: kind, Format: format, Path: path}
	info, err := os.Stat(path)
	if err != nil {
		return artifact
	}
	artifact.Exists = true
	artifact.Size = info.Size()
	return artifact
}
