package fixtures

import (
	command "github.com/goliatone/go-command"
)

// RecordingRegistry captures command handlers registered through DI.
type RecordingRegistry struct {
	Handlers []any
	Err      error
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Handlers: make([]any, 0),
	}
}

// RegisterCommand records handler.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	if r.Err != nil {
		return r.Err
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}

// CronRegistration captures a single cron wiring invocation.
type CronRegistration struct {
	Config  command.HandlerConfig
	Handler any
}

// CronRecorder records calls to a cron registrar function.
type CronRecorder struct {
	Registrations []CronRegistration
	err           error
}

// NewCronRecorder constructs a cron recorder.
func NewCronRecorder() *CronRecorder {
	return &CronRecorder{
		Registrations: make([]CronRegistration, 0),
	}
}

// Fail configures the recorder to return err on registration.
func (c *CronRecorder) Fail(err error) {
	c.err = err
}

// Register records a cron registration.
func (c *CronRecorder) Register(cfg command.HandlerConfig, handler any) error {
	if c.err != nil {
		return c.err
	}
	c.Registrations = append(c.Registrations, CronRegistration{
		Config:  cfg,
		Handler: handler,
	})
	return nil
}
