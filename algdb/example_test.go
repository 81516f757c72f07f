package algdb_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/blindcube/algdb"
	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

func ExampleTranslate() {
	db, err := algdb.Parse([]byte(`
corners:
  "swap:FRD": "[R, U]"
  "swap:UBL": "U R"
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	seq := blind.Sequence[blind.CornerOp]{
		blind.CornerSwap(cube.DFR, 1),
		blind.CornerSwap(cube.UBL, 0),
	}
	turns, _ := algdb.Translate(db, seq)
	fmt.Println(strings.Join(turns, " "))

	// Output:
	// R U
}
