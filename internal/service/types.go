package service

import (
	"fmt"
	"strings"
)

// Service is one registry record. Commands are nil when absent and are
// encoded as JSON null.
type Service struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	StartCommand   *string `json:"start_command"`
	StopCommand    *string `json:"stop_command"`
	RestartCommand *string `json:"restart_command"`
}

// Action selects which stored command an execution runs.
type Action int

const (
	Start Action = iota + 1
	Stop
	Restart
)

func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Verb is the capitalised form used in user-facing messages.
func (a Action) Verb() string {
	s := a.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Command returns the stored command for the action, or nil if absent.
func (s *Service) Command(a Action) *string {
	switch a {
	case Start:
		return s.StartCommand
	case Stop:
		return s.StopCommand
	case Restart:
		return s.RestartCommand
	}
	return nil
}

// Str returns a pointer to v, or nil when v is empty.
func Str(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Deref returns the command text or the given placeholder when absent.
func Deref(p *string, placeholder string) string {
	if p == nil {
		return placeholder
	}
	return *p
}
