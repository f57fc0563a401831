package config

type (
	// PanicHandler receives the error built from a value recovered in a listener.
	PanicHandler func(error)

	SourceOptionsInterface interface {
		SetName(string)
		GetRawName() *string
		Name() string

		SetMaxListeners(uint)
		GetRawMaxListeners() *uint
		MaxListeners() uint

		SetRecoverPanics(bool)
		GetRawRecoverPanics() *bool
		RecoverPanics() bool

		SetPanicHandler(PanicHandler)
		GetRawPanicHandler() PanicHandler
		PanicHandler() PanicHandler

		SetDebug(bool)
		GetRawDebug() *bool
		Debug() bool
	}

	SourceOptions struct {
		// name of the source, appended to the "events" debug namespace
		name *string

		// number of listeners after which a possible leak is reported, zero for unlimited
		maxListeners *uint

		// whether each listener runs in its own recover scope
		recoverPanics *bool

		// receives recovered listener panics when recoverPanics is set
		panicHandler PanicHandler

		// force debug output regardless of the DEBUG environment variable
		debug *bool
	}
)

func DefaultSourceOptions() *SourceOptions {
	s := &SourceOptions{}
	return s
}

func (s *SourceOptions) Assign(data SourceOptionsInterface) SourceOptionsInterface {
	if data == nil {
		return s
	}

	if s.GetRawName() == nil {
		s.SetName(data.Name())
	}
	if s.GetRawMaxListeners() == nil {
		s.SetMaxListeners(data.MaxListeners())
	}
	if s.GetRawRecoverPanics() == nil {
		s.SetRecoverPanics(data.RecoverPanics())
	}
	if s.GetRawPanicHandler() == nil {
		s.SetPanicHandler(data.PanicHandler())
	}
	if s.GetRawDebug() == nil {
		s.SetDebug(data.Debug())
	}

	return s
}

// name of the source, used as "events:<name>" debug namespace
// @default ""
func (s *SourceOptions) SetName(name string) {
	s.name = &name
}
func (s *SourceOptions) GetRawName() *string {
	return s.name
}
func (s *SourceOptions) Name() string {
	if s.name == nil {
		return ""
	}

	return *s.name
}

// number of listeners after which a possible leak is reported
// @default 0 unlimited
func (s *SourceOptions) SetMaxListeners(maxListeners uint) {
	s.maxListeners = &maxListeners
}
func (s *SourceOptions) GetRawMaxListeners() *uint {
	return s.maxListeners
}
func (s *SourceOptions) MaxListeners() uint {
	if s.maxListeners == nil {
		return 0
	}

	return *s.maxListeners
}

// isolate each listener and keep dispatching when one panics
// @default false
func (s *SourceOptions) SetRecoverPanics(recoverPanics bool) {
	s.recoverPanics = &recoverPanics
}
func (s *SourceOptions) GetRawRecoverPanics() *bool {
	return s.recoverPanics
}
func (s *SourceOptions) RecoverPanics() bool {
	if s.recoverPanics == nil {
		return false
	}

	return *s.recoverPanics
}

// handler for recovered listener panics, nil logs them
// @default nil
func (s *SourceOptions) SetPanicHandler(panicHandler PanicHandler) {
	s.panicHandler = panicHandler
}
func (s *SourceOptions) GetRawPanicHandler() PanicHandler {
	return s.panicHandler
}
func (s *SourceOptions) PanicHandler() PanicHandler {
	return s.panicHandler
}

// @default false
func (s *SourceOptions) SetDebug(debug bool) {
	s.debug = &debug
}
func (s *SourceOptions) GetRawDebug() *bool {
	return s.debug
}
func (s *SourceOptions) Debug() bool {
	if s.debug == nil {
		return false
	}

	return *s.debug
}
