package gridbind

import "github.com/kungfusheep/gridbind/grid"

// Scope is a held suppression of one side's notifications. Release ends it;
// calling Release more than once is harmless. Always defer the release so
// the suppression ends on every exit path.
type Scope struct {
	release func()
}

// Release ends the suppression.
func (s *Scope) Release() {
	if s == nil || s.release == nil {
		return
	}
	fn := s.release
	s.release = nil
	fn()
}

// suspendGrid holds back the grid's data-changed notifications.
func suspendGrid(g grid.Grid) *Scope {
	g.SuspendDataChangedEvents()
	return &Scope{release: g.ResumeDataChangedEvents}
}

// muteRecords detaches the collection listener until released. A nested
// call while already detached returns an empty scope.
func (b *Binding[R]) muteRecords() *Scope {
	if b.unsubRecords == nil {
		return &Scope{}
	}
	b.unsubRecords()
	b.unsubRecords = nil
	return &Scope{release: func() {
		if !b.detached {
			b.subscribeRecords()
		}
	}}
}
