package fs

import (
	"log/slog"

	"github.com/BurntSushi/toml"
)

// pyprojectTOML mirrors the subset of pyproject.toml venvsweep reads.
type pyprojectTOML struct {
	Project nameTable `toml:"project"`
	Tool    toolTable `toml:"tool"`
}

type nameTable struct {
	Name string `toml:"name"`
}

type toolTable struct {
	Poetry nameTable `toml:"poetry"`
}

// PyProject reads project metadata out of marker files.
type PyProject struct {
	log *slog.Logger
}

// NewPyProject creates a new PyProject reader.
func NewPyProject(log *slog.Logger) *PyProject {
	return &PyProject{log: log.With("component", "PyProject")}
}

// ProjectName returns the name declared in a pyproject.toml, preferring
// PEP 621 [project] over [tool.poetry]. A malformed or nameless file
// yields an empty name; the marker still identifies a project root.
func (p *PyProject) ProjectName(markerPath string) string {
	var raw pyprojectTOML
	if _, err := toml.DecodeFile(markerPath, &raw); err != nil {
		p.log.Debug("cannot parse pyproject.toml", "path", markerPath, "error", err)
		return ""
	}
	if raw.Project.Name != "" {
		return raw.Project.Name
	}
	return raw.Tool.Poetry.Name
}
