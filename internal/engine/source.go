package engine

// ManualSource is a FrameSource fired by hand. Hosts without a refresh
// callback of their own, and tests, drive the loop through it.
type ManualSource struct {
	fn func()
}

func (s *ManualSource) Register(fn func()) func() {
	s.fn = fn
	return func() { s.fn = nil }
}

// Fire runs the registered callback once. It reports false when nothing is
// registered.
func (s *ManualSource) Fire() bool {
	if s.fn == nil {
		return false
	}
	s.fn()
	return true
}

func (s *ManualSource) Registered() bool { return s.fn != nil }
