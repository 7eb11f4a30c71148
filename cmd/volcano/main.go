// Command volcano computes the maximum pressure a team of actors can
// release from a cave of valves and tunnels.
//
// Usage:
//
//	volcano solve scan.txt                     # both reference scenarios
//	volcano solve scan.txt --actors 3 --minutes 20 --bound --workers 8
//	volcano solve scan.txt --config volcano.yaml --schedule
//	volcano distances scan.txt --strategy bfs
//	volcano generate --shape grid --rows 5 --cols 5 --seed 42 > scan.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
