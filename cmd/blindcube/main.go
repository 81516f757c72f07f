// Command blindcube solves blindfolded cube states piece by piece and
// explains wrong final states.
//
//	blindcube solve "R U R' U'"
//	blindcube detect --scramble "R U R' U'" --observed "..." --kind corners
//	blindcube translate --algorithms algs.yaml "R U R' U'"
//	blindcube expand "[R U R', D]"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
