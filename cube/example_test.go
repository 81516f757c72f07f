package cube_test

import (
	"fmt"

	"github.com/katalvlaran/blindcube/cube"
)

// ExampleScramble applies a short algorithm to the solved cube and prints
// the resulting permutation cycles.
func ExampleScramble() {
	s, err := cube.Scramble("R U R' U'")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Describe())

	// Output:
	// corners: (UBL UBR) (UFR DFR) twisted: UBR+2 UFR+2 DFR+2; edges: (FR UB UR)
}
