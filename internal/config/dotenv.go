package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// defaultDotEnvPath is read when ENV_FILE is not set. Its absence is not
// an error.
const defaultDotEnvPath = ".env"

// loadDotEnv copies variables from a .env file into the process
// environment. Variables that are already set are left untouched, so the
// real environment always wins over the file.
//
// The file path is taken from ENV_FILE; an explicitly named file must exist.
func loadDotEnv() error {
	path, explicit := os.LookupEnv("ENV_FILE")
	if !explicit || path == "" {
		path = defaultDotEnvPath
		explicit = false
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
