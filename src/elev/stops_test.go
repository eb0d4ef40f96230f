package elev

import "testing"

func TestStopSet(t *testing.T) {
	var s stopSet
	s.mark(0)
	s.mark(29)
	s.mark(4)
	s.clear(4)
	if !s.has(0) || !s.has(29) || s.has(4) {
		t.Errorf("unexpected set %032b", uint32(s))
	}
	got := s.bools(30)
	if len(got) != 30 || !got[0] || !got[29] || got[1] {
		t.Errorf("bools = %v", got)
	}
	s.reset()
	if s != 0 {
		t.Errorf("reset left %032b", uint32(s))
	}
}
