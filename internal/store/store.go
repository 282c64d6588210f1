package store

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/glopal/services/internal/service"
)

var logger = loggo.GetLogger("services.store")

// Store is the file-backed registry. The whole file is the unit of
// reading and writing.
type Store struct {
	path string
}

// New returns a store for the registry file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads every record. A missing file is an empty registry.
func (s *Store) Load() ([]service.Service, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logger.Infof("no registry at %s yet; starting with no services", s.path)
		return []service.Service{}, nil
	}
	if err != nil {
		return nil, errors.WithType(errors.Annotatef(err, "reading registry %s", s.path), service.ErrIO)
	}
	return Decode(data)
}

// Replace rewrites the registry with services, creating the directory and
// file when absent.
func (s *Store) Replace(services []service.Service) error {
	data, err := Encode(services)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.WithType(errors.Annotatef(err, "creating %s", filepath.Dir(s.path)), service.ErrIO)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.WithType(errors.Annotatef(err, "writing registry %s", s.path), service.ErrIO)
	}
	logger.Debugf("wrote %d services to %s", len(services), s.path)
	return nil
}

// Append loads the registry, adds svc at the end with the next id and
// rewrites the file. The stored record is returned.
func (s *Store) Append(svc service.Service) (service.Service, error) {
	services, err := s.Load()
	if err != nil {
		return svc, err
	}
	svc.ID = len(services) + 1
	return svc, s.Replace(append(services, svc))
}

// Decode parses registry content. Blank content is an empty registry.
func Decode(data []byte) ([]service.Service, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []service.Service{}, nil
	}
	var services []service.Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, errors.WithType(errors.Annotate(err, "parsing registry"), service.ErrSerialization)
	}
	if services == nil {
		services = []service.Service{}
	}
	return services, nil
}

// Encode renders services as indented JSON with a trailing newline.
func Encode(services []service.Service) ([]byte, error) {
	if services == nil {
		services = []service.Service{}
	}
	data, err := json.MarshalIndent(services, "", "  ")
	if err != nil {
		return nil, errors.WithType(errors.Annotate(err, "encoding registry"), service.ErrSerialization)
	}
	return append(data, '\n'), nil
}
