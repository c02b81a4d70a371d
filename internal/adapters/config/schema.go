package config

// Filehashfile represents the structure of the filehash.yaml configuration file.
type Filehashfile struct {
	Version     string   `yaml:"version"`
	CacheDir    string   `yaml:"cacheDir"`
	Backend     string   `yaml:"backend"`
	Concurrency int      `yaml:"concurrency"`
	Ignore      []string `yaml:"ignore"`
	LockTimeout string   `yaml:"lockTimeout"`
	Log         LogDTO   `yaml:"log"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	Format string `yaml:"format"`
}
