package manager

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/glopal/services/internal/runner"
	"github.com/glopal/services/internal/service"
)

var logger = loggo.GetLogger("services.manager")

// ErrEmpty is returned by List when the registry holds no services.
const ErrEmpty = errors.ConstError("no services registered")

// Registry is the persistence the manager works against. Every operation
// loads, changes the records in memory and replaces the whole set.
type Registry interface {
	Load() ([]service.Service, error)
	Replace([]service.Service) error
	Append(service.Service) (service.Service, error)
}

// Manager implements the service operations on top of a Registry.
type Manager struct {
	reg Registry
	run runner.Runner
}

// New returns a manager that persists to reg and executes with run.
func New(reg Registry, run runner.Runner) *Manager {
	return &Manager{reg: reg, run: run}
}

// Changes lists the fields an edit overwrites. A nil field is left as
// stored. A command set to "" is cleared.
type Changes struct {
	Name           *string
	StartCommand   *string
	StopCommand    *string
	RestartCommand *string
}

// Empty reports whether no field was supplied.
func (c Changes) Empty() bool {
	return c.Name == nil && c.StartCommand == nil && c.StopCommand == nil && c.RestartCommand == nil
}

// Add registers a new service with the next free id.
func (m *Manager) Add(name string, start, stop, restart *string) (service.Service, error) {
	if name == "" {
		return service.Service{}, errors.NotValidf("empty service name")
	}
	svc, err := m.reg.Append(service.Service{
		Name:           name,
		StartCommand:   normalize(start),
		StopCommand:    normalize(stop),
		RestartCommand: normalize(restart),
	})
	if err != nil {
		return svc, errors.Annotatef(err, "adding service %q", name)
	}
	logger.Debugf("added service %d %q", svc.ID, svc.Name)
	return svc, nil
}

// List returns every service in storage order, or ErrEmpty.
func (m *Manager) List() ([]service.Service, error) {
	services, err := m.reg.Load()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(services) == 0 {
		return nil, ErrEmpty
	}
	return services, nil
}

// Edit overwrites the supplied fields of the service with the given id.
// An unknown id is NotFound and nothing is written.
func (m *Manager) Edit(id int, c Changes) (service.Service, error) {
	if c.Name != nil && *c.Name == "" {
		return service.Service{}, errors.NotValidf("empty service name")
	}
	services, err := m.reg.Load()
	if err != nil {
		return service.Service{}, errors.Trace(err)
	}

	var svc *service.Service
	for i := range services {
		if services[i].ID == id {
			svc = &services[i]
			break
		}
	}
	if svc == nil {
		return service.Service{}, errors.NotFoundf("service with id %d", id)
	}

	if c.Name != nil {
		svc.Name = *c.Name
	}
	if c.StartCommand != nil {
		svc.StartCommand = normalize(c.StartCommand)
	}
	if c.StopCommand != nil {
		svc.StopCommand = normalize(c.StopCommand)
	}
	if c.RestartCommand != nil {
		svc.RestartCommand = normalize(c.RestartCommand)
	}

	if err := m.reg.Replace(services); err != nil {
		return *svc, errors.Annotatef(err, "editing service %d", id)
	}
	return *svc, nil
}

// Remove deletes every service matching the target and renumbers the rest.
// A record is kept only if it differs from every supplied criterion.
// It returns the number of records removed.
func (m *Manager) Remove(t service.Target) (int, error) {
	if t.Empty() {
		return 0, errors.NotValidf("remove without an id or a name")
	}
	services, err := m.reg.Load()
	if err != nil {
		return 0, errors.Trace(err)
	}

	kept := make([]service.Service, 0, len(services))
	for _, s := range services {
		idKeeps := t.ID == nil || s.ID != *t.ID
		nameKeeps := t.Name == nil || s.Name != *t.Name
		if idKeeps && nameKeeps {
			kept = append(kept, s)
		}
	}

	removed := len(services) - len(kept)
	if removed == 0 {
		return 0, errors.NotFoundf("service matching %s", t)
	}
	if err := m.reg.Replace(kept); err != nil {
		return 0, errors.Annotatef(err, "removing %s", t)
	}
	if err := m.Renumber(); err != nil {
		return removed, errors.Trace(err)
	}
	return removed, nil
}

// Renumber reassigns ids 1..N in storage order and always rewrites the
// registry.
func (m *Manager) Renumber() error {
	services, err := m.reg.Load()
	if err != nil {
		return errors.Trace(err)
	}
	service.Renumber(services)
	return errors.Annotate(m.reg.Replace(services), "renumbering services")
}

func normalize(p *string) *string {
	if p == nil {
		return nil
	}
	return service.Str(*p)
}
