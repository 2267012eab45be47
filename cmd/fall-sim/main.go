package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/core"
)

func main() {
	games := flag.Int("games", 100, "The number of games to play to completion.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece source and the action sequence.")
	maxTransitions := flag.Int("max-transitions", 200000, "Safety cap on transitions per game.")
	flag.Parse()

	log.Println("Starting game core stress test...")

	rng := rand.New(rand.NewPCG(*seed, *seed+1))
	report := NewReport(*games, *seed)

	// Wrapping the piece source is the cheapest way to get the true draw
	// distribution, start and respawn draws included.
	src := &countingSource{src: core.NewSeededSource(*seed), report: report}

	ops := []core.Op{
		core.OpMoveLeft,
		core.OpMoveRight,
		core.OpRotate,
		core.OpSoftDrop,
		core.OpHardDrop,
		core.OpTick,
	}

	startTime := time.Now()
	for range *games {
		sess, events := core.Apply(core.NewSession(), core.Action{Op: core.OpStart}, src)
		report.CountEvents(events)

		transitions := 0
		for !sess.Over && transitions < *maxTransitions {
			op := ops[rng.IntN(len(ops))]

			applyStart := time.Now()
			sess, events = core.Apply(sess, core.Action{Op: op}, src)
			report.Transition.Samples = append(report.Transition.Samples, time.Since(applyStart))

			report.CountEvents(events)
			transitions++
		}

		report.FinishGame(sess, transitions)
	}
	report.TotalTime = time.Since(startTime)
	report.Transition.Finalize()

	log.Println("Simulation finished.")

	fmt.Println("\n--- Game Core Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// countingSource decorates a Source, tallying every drawn kind into the
// report.
type countingSource struct {
	src    core.Source
	report *Report
}

func (c *countingSource) Next() core.Kind {
	k := c.src.Next()
	c.report.CountKind(k)
	return k
}
