package service

import (
	"strconv"
	"strings"
)

// Target names the record an operation addresses. Either field may be nil.
type Target struct {
	ID   *int
	Name *string
}

// ByID returns a target for the given id.
func ByID(id int) Target { return Target{ID: &id} }

// ByName returns a target for the given name.
func ByName(name string) Target { return Target{Name: &name} }

// Empty reports whether neither an id nor a name was supplied.
func (t Target) Empty() bool { return t.ID == nil && t.Name == nil }

func (t Target) String() string {
	switch {
	case t.ID != nil && t.Name != nil:
		return "id " + strconv.Itoa(*t.ID) + " / name " + strconv.Quote(*t.Name)
	case t.ID != nil:
		return "id " + strconv.Itoa(*t.ID)
	case t.Name != nil:
		return "name " + strconv.Quote(*t.Name)
	default:
		return "no target"
	}
}

// ParseKey parses a positional key into a target.
// Id key: "2"
// Name key: "web"
func ParseKey(key string) Target {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil && id > 0 {
		return ByID(id)
	}
	return ByName(key)
}
