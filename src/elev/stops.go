package elev

import "elevbank/src/config"

// stopSet marks the floors a car must open its door at on the current run, one bit per floor.
type stopSet uint32

// Every floor of the tallest allowed car must fit in the set.
var _ [32 - config.MaxCarFloors]struct{}

func (s *stopSet) mark(floor int)    { *s |= 1 << floor }
func (s *stopSet) clear(floor int)   { *s &^= 1 << floor }
func (s *stopSet) reset()            { *s = 0 }
func (s stopSet) has(floor int) bool { return s&(1<<floor) != 0 }

func (s stopSet) bools(n int) []bool {
	out := make([]bool, n)
	for floor := range out {
		out[floor] = s.has(floor)
	}
	return out
}
