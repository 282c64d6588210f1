package service

import "github.com/juju/errors"

// Resolution says how a target was matched to a record.
type Resolution int

const (
	ResolvedByID Resolution = iota + 1
	ResolvedByName
	// ResolvedDefault means no id or name was given and the first
	// registered service (id 1) was selected.
	ResolvedDefault
)

func (r Resolution) String() string {
	switch r {
	case ResolvedByID:
		return "id"
	case ResolvedByName:
		return "name"
	case ResolvedDefault:
		return "default"
	}
	return "unresolved"
}

// Resolve maps a target onto one record. An id takes precedence over a name.
// An empty target selects id 1. With duplicate names the first record in
// storage order wins.
func Resolve(services []Service, t Target) (*Service, Resolution, error) {
	if len(services) == 0 {
		return nil, 0, errors.NewNotFound(nil, "no services registered; add a service before executing commands")
	}

	how := ResolvedByID
	if t.Empty() {
		t = ByID(1)
		how = ResolvedDefault
	}

	if t.ID != nil {
		for i := range services {
			if services[i].ID == *t.ID {
				return &services[i], how, nil
			}
		}
		return nil, 0, errors.NotFoundf("service with id %d", *t.ID)
	}

	for i := range services {
		if services[i].Name == *t.Name {
			return &services[i], ResolvedByName, nil
		}
	}
	return nil, 0, errors.NotFoundf("service named %q", *t.Name)
}

// Renumber assigns each record its 1-based position as id.
func Renumber(services []Service) {
	for i := range services {
		services[i].ID = i + 1
	}
}
