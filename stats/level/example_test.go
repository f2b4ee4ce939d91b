package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-pingpong/stats/level"
)

func ExampleCalculate() {
	s := level.Calculate([]float32{0.5, -0.25, 0.25, -0.5})
	fmt.Printf("peak %.1f dBFS, clipped %d\n", s.PeakDB, s.Clipped)
	// Output:
	// peak -6.0 dBFS, clipped 0
}
