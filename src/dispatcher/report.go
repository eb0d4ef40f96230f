package dispatcher

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"elevbank/src/elev"
	"elevbank/src/types"
)

// BuildingReport is a read-only snapshot of the building. It never aliases live state.
type BuildingReport struct {
	NumFloors int
	NumCars   int
	Capacity  int
	Cars      []elev.CarReport
	Up        []types.Request
	Down      []types.Request
	State     types.SystemState
	Ticks     int
}

func (b *Building) Report() BuildingReport {
	cars := make([]elev.CarReport, len(b.cars))
	for i, car := range b.cars {
		cars[i] = car.Report()
	}
	return BuildingReport{
		NumFloors: b.numFloors,
		NumCars:   b.numCars,
		Capacity:  b.capacity,
		Cars:      cars,
		Up:        b.up.items(),
		Down:      b.down.items(),
		State:     b.state,
		Ticks:     b.ticks,
	}
}

// Clone returns a deep copy, so listeners can keep or modify their snapshot.
func (r BuildingReport) Clone() BuildingReport {
	clone := new(BuildingReport)
	if err := deepcopy.Copy(clone, &r); err != nil {
		panic(err)
	}
	return *clone
}

func (r BuildingReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Building Report:\n")
	fmt.Fprintf(&sb, "Number of Floors: %d\n", r.NumFloors)
	fmt.Fprintf(&sb, "Number of Cars: %d\n", r.NumCars)
	fmt.Fprintf(&sb, "Car Capacity: %d\n", r.Capacity)
	fmt.Fprintf(&sb, "System Status: %v\n", r.State)
	fmt.Fprintf(&sb, "Tick: %d\n", r.Ticks)
	sb.WriteString("Car Reports:\n")
	for _, car := range r.Cars {
		fmt.Fprintf(&sb, "%v\n", car)
	}
	fmt.Fprintf(&sb, "Up Requests: %d\n", len(r.Up))
	fmt.Fprintf(&sb, "Down Requests: %d\n", len(r.Down))
	return sb.String()
}
