package kassa

import (
	"os"

	"kassa/util"
)

const (
	dbEnvVar  = "KASSA_DB"
	logEnvVar = "KASSA_LOG"
)

// Config locates the database and log files.
type Config struct {
	DbPath  string `yaml:"db_path"`
	LogPath string `yaml:"log_path"`
}

// LoadConfig starts from defaults, overlays a yaml file when one is
// present at path, and lets env vars win over both.
func LoadConfig(path string) (cfg Config, err error) {

	cfg = Config{
		DbPath:  "kassa.db",
		LogPath: "kassa.log",
	}

	_, statErr := os.Stat(path)
	if statErr == nil {
		err = util.LoadConfig(&cfg, path)
		if err != nil {
			return
		}
	}

	if db := os.Getenv(dbEnvVar); db != "" {
		cfg.DbPath = db
	}
	if lg := os.Getenv(logEnvVar); lg != "" {
		cfg.LogPath = lg
	}

	return
}
