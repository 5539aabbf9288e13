package model

// Config holds the complete qparchive configuration
type Config struct {
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Unpack UnpackConfig `yaml:"unpack" mapstructure:"unpack"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// ScanConfig configures the metadata scanner
type ScanConfig struct {
	OutDir   string `yaml:"out_dir" mapstructure:"out_dir"`     // Output directory for metadata JSON
	SiteRoot string `yaml:"site_root" mapstructure:"site_root"` // Base for rel_paths in output
}

// UnpackConfig configures the recursive archive extractor
type UnpackConfig struct {
	// Suffix identifying nested archives during the post-extraction walk.
	// Matched case-sensitively, like the rest of the on-disk layout.
	ArchiveExt string `yaml:"archive_ext" mapstructure:"archive_ext"`
}

// OutputConfig configures CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			OutDir:   "metadata",
			SiteRoot: ".",
		},
		Unpack: UnpackConfig{
			ArchiveExt: ".zip",
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
