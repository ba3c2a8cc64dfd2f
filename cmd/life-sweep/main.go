package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"
	"time"

	"lifeplane/internal/core"
	"lifeplane/internal/sweep"
)

func main() {
	generations := flag.Int("generations", 500, "generations to advance per scenario")
	scenarios := flag.Int("scenarios", 8, "number of random soups")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	side := flag.Int64("soup", 64, "side length of each random soup")
	density := flag.Float64("density", 0.3, "random soup fill probability")
	ruleFlag := flag.String("rule", core.Conway.String(), "birth/survival rule in B/S notation")
	seed := flag.Int64("seed", 1, "seed of the first soup")
	gun := flag.Bool("gun", true, "also run the Gosper glider gun")
	flag.Parse()

	rule, err := core.ParseRule(*ruleFlag)
	if err != nil {
		log.Fatalf("life-sweep: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	list := sweep.SoupScenarios(*scenarios, *side, *density, *seed, rule, *generations)
	if *gun {
		list = append(list, sweep.GunScenario(rule, *generations))
	}

	fmt.Printf("Running %d scenarios (%s, %d generations, %d workers)\n", len(list), rule, *generations, *workers)
	start := time.Now()
	results, err := sweep.Run(ctx, list, *workers)
	if err != nil {
		log.Fatalf("life-sweep: %v", err)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Peak > results[j].Peak })
	for _, r := range results {
		fmt.Println(r)
	}
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
}
