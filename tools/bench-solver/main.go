package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/geodic/kociemba/internal/kociemba"
)

func main() {
	count := flag.Int("n", 100, "number of random cubes to solve")
	maxMoves := flag.Int("m", kociemba.DefaultMaxMoves, "move target per solve")
	timeoutMS := flag.Int("t", 1000, "per-solve timeout in milliseconds")
	flag.Parse()

	fmt.Println("Warming tables...")
	warmStart := time.Now()
	if err := kociemba.EnsureTables(kociemba.DefaultTableDir()); err != nil {
		fmt.Fprintf(os.Stderr, "table build failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Tables ready in %s\n\n", time.Since(warmStart).Round(time.Millisecond))

	totalMoves := 0
	var totalTime time.Duration
	worst := 0
	missed := 0

	for i := 0; i < *count; i++ {
		sc := kociemba.Scramble()
		result, err := kociemba.Solve(sc.Facelets, *maxMoves, time.Duration(*timeoutMS)*time.Millisecond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "solve %d failed: %v\n", i, err)
			os.Exit(1)
		}
		totalMoves += result.MoveCount
		totalTime += result.SolveTime
		if result.MoveCount > worst {
			worst = result.MoveCount
		}
		if result.Status != kociemba.StatusSolvedTarget {
			missed++
		}
	}

	fmt.Printf("Solved %d random cubes\n", *count)
	fmt.Printf("Average length: %.2f moves\n", float64(totalMoves)/float64(*count))
	fmt.Printf("Worst length:   %d moves\n", worst)
	fmt.Printf("Average time:   %s\n", (totalTime / time.Duration(*count)).Round(time.Microsecond))
	fmt.Printf("Missed target:  %d\n", missed)
}
