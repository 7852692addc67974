package layout

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is one panel kind's saved settings blob, reusable when adding a
// new panel of that kind.
type Preset struct {
	Name     string         `yaml:"name"`
	TypeTag  string         `yaml:"typeTag"`
	Settings map[string]any `yaml:"settings"`
}

// PresetStore keeps presets as yaml files under <dir>/<typeTag>/<name>.yaml.
type PresetStore struct {
	Dir string
}

func NewPresetStore(dir string) *PresetStore {
	return &PresetStore{Dir: dir}
}

func sanitize(s string) string {
	return filepath.Base(strings.ReplaceAll(s, string(filepath.Separator), "_"))
}

func (s *PresetStore) Save(typeTag, name string, settings map[string]any) error {
	dir := filepath.Join(s.Dir, sanitize(typeTag))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(Preset{Name: name, TypeTag: typeTag, Settings: settings})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, sanitize(name)+".yaml"), data, 0644)
}

// Load returns every preset saved for the given type tag, sorted by name.
// Unreadable files are skipped.
func (s *PresetStore) Load(typeTag string) ([]Preset, error) {
	dir := filepath.Join(s.Dir, sanitize(typeTag))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []Preset
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		var p Preset
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
