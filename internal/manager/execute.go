package manager

import (
	"github.com/juju/errors"

	"github.com/glopal/services/internal/runner"
	"github.com/glopal/services/internal/service"
)

// Result describes one execution.
type Result struct {
	Service    service.Service
	Resolution service.Resolution
	Action     service.Action
	Command    string
	Output     runner.Output
}

// Success reports whether the command exited cleanly.
func (r Result) Success() bool {
	return r.Output.Success()
}

// Prepare resolves the target and picks the command for action without
// running anything. It fails with NotFound when no service matches and
// NotImplemented when the service has no command for action.
func (m *Manager) Prepare(t service.Target, action service.Action) (Result, error) {
	services, err := m.reg.Load()
	if err != nil {
		return Result{}, errors.Trace(err)
	}
	svc, how, err := service.Resolve(services, t)
	if err != nil {
		return Result{}, err
	}
	res := Result{Service: *svc, Resolution: how, Action: action}
	cmd := svc.Command(action)
	if cmd == nil {
		return res, errors.NotImplementedf("%s command for service %q", action, svc.Name)
	}
	res.Command = *cmd
	return res, nil
}

// Run executes a prepared result. The registry is not touched.
func (m *Manager) Run(res Result) (Result, error) {
	logger.Debugf("%s service %d %q via %s", res.Action, res.Service.ID, res.Service.Name, res.Resolution)
	out, err := m.run.Run(res.Command)
	res.Output = out
	if err != nil {
		return res, errors.Annotatef(err, "executing %s for %q", res.Action, res.Service.Name)
	}
	return res, nil
}

// Execute resolves the target and runs its command for action.
func (m *Manager) Execute(t service.Target, action service.Action) (Result, error) {
	res, err := m.Prepare(t, action)
	if err != nil {
		return res, err
	}
	return m.Run(res)
}
