// Package dirbuild interprets an agent build directory
package dirbuild

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/eval"

	"github.com/goccy/go-yaml"
)

const (
	AgentFile = "agent.yaml"

	ContainersDir = "containers"
	SpecsDir      = "specs"
	FragmentExt   = ".yaml"
)

var ErrResolve = errors.New("resolution error")

type Dir struct {
	Root        string         `yaml:"-"`
	Cloud       string         `yaml:"cloud,omitempty"`
	Debug       bool           `yaml:"debug,omitempty"`
	Base        string         `yaml:"base,omitempty"`
	Vars        map[string]any `yaml:"vars,omitempty"`
	Subst       yaml.MapSlice  `yaml:"subst,omitempty"`
	Containers  []DirFragment  `yaml:"containers,omitempty"`
	Specs       []DirFragment  `yaml:"specs,omitempty"`
	Patch       string         `yaml:"patch,omitempty"`
	CheckImages bool           `yaml:"checkImages,omitempty"`
}

// DirFragment selects one fragment file. The file defaults to
// <kind>/<name>.yaml under the directory root.
type DirFragment struct {
	Name  string        `yaml:"name"`
	If    string        `yaml:"if,omitempty"`
	File  string        `yaml:"file,omitempty"`
	Subst yaml.MapSlice `yaml:"subst,omitempty"`
}

type agentFile struct {
	Agent *Dir `yaml:"agent"`
}

// OpenDir reads the agent file in path. Entries of vars override the
// variables declared there.
func OpenDir(path string, vars map[string]any) (*Dir, error) {
	if debug.Load() {
		debug.Logf("OpenDir input vars:\n%v", vars)
	}
	agentPath := filepath.Join(path, AgentFile)
	d, err := os.ReadFile(agentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: could not find %s in %q", ErrResolve, AgentFile, path)
		}
		return nil, fmt.Errorf("could not read %q: %w", agentPath, err)
	}
	af := &agentFile{}
	if err := yaml.Unmarshal(d, af); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", agentPath, err)
	}
	if af.Agent == nil {
		return nil, fmt.Errorf("%s has no agent entry", agentPath)
	}
	dir := af.Agent
	dir.Root = path
	if dir.Vars == nil {
		dir.Vars = map[string]any{}
	}
	maps.Copy(dir.Vars, vars)
	if debug.Load() {
		debug.Logf("loaded vars %v\n", dir.Vars)
	}
	return dir, nil
}

// Env returns the variables visible to conditions and expansions: the
// directory variables plus cloud and debug.
func (d *Dir) Env() eval.Env {
	env := eval.Env{}
	maps.Copy(env, d.Vars)
	env["cloud"] = d.Cloud
	env["debug"] = d.Debug
	return env
}

func (d *Dir) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.Root, p)
}

func (d *Dir) readFile(p string) ([]byte, error) {
	data, err := os.ReadFile(d.path(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrResolve, p, err)
		}
		return nil, err
	}
	return data, nil
}
