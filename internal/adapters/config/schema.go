package config

// ProjectFile is the structure of launchpad.yaml. Every field is optional.
type ProjectFile struct {
	Version   string   `yaml:"version"`
	Name      string   `yaml:"name"`
	SourceDir string   `yaml:"source_dir"`
	Sources   []string `yaml:"sources"`
	BuildDir  string   `yaml:"build_dir"`
	Strategy  string   `yaml:"strategy"`
	Generator string   `yaml:"generator"`
	Config    string   `yaml:"config"`
	Compiler  string   `yaml:"compiler"`
	CMake     string   `yaml:"cmake"`
}
