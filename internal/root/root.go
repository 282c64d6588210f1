package root

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

const (
	// EnvHome overrides the base directory.
	EnvHome = "SERVICES_HOME"

	// DirName is the hidden directory created under the user's home.
	DirName = ".cli"

	// RegistryFile is the registry file name inside the base directory.
	RegistryFile = "services.json"

	// ConfigFile is the optional config file name inside the base directory.
	ConfigFile = "config.yaml"
)

// BaseDir resolves the per-user base directory. An explicit value wins,
// then $SERVICES_HOME, then ~/.cli.
func BaseDir(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if env := os.Getenv(EnvHome); env != "" {
		return filepath.Abs(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Annotate(err, "resolving home directory")
	}
	return filepath.Join(home, DirName), nil
}

// RegistryPath returns the registry file path inside base.
func RegistryPath(base string) string {
	return filepath.Join(base, RegistryFile)
}

// ConfigPath returns the config file path inside base.
func ConfigPath(base string) string {
	return filepath.Join(base, ConfigFile)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether the base directory has been created.
func Exists(base string) bool {
	return isDir(base)
}
