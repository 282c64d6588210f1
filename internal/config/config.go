package config

import (
	"os"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"gopkg.in/yaml.v3"
)

var logger = loggo.GetLogger("services.config")

// Config holds optional settings read from config.yaml in the base directory.
type Config struct {
	// Registry overrides the registry file location.
	Registry string `yaml:"registry"`
	// Shell is the command prefix used to run stored commands, e.g. "/bin/bash -lc".
	Shell string `yaml:"shell"`
}

// Load reads the config file at path. A missing file yields a zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debugf("no config at %s", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Annotatef(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.NewNotValid(err, "parsing config "+path)
	}
	return cfg, nil
}
