package observe

// OpMeta identifies an instrumented operation.
type OpMeta struct {
	Component string // Owning package or subsystem, e.g. "fetch" (optional)
	Name      string // Operation name, e.g. "get_json" (required)
	Version   string // Component version (optional)
}

// ID returns component.name, or just name when there is no component.
func (m OpMeta) ID() string {
	if m.Component != "" {
		return m.Component + "." + m.Name
	}
	return m.Name
}

// SpanName returns the deterministic span name: op.exec.<id>.
func (m OpMeta) SpanName() string {
	return "op.exec." + m.ID()
}

// Validate checks that the operation is named.
func (m OpMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingOpName
	}
	return nil
}
