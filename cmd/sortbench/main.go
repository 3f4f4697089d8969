// Copyright 2025 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sortbench measures go-sortkit throughput on synthetic input
// patterns and prints a latency distribution.
//
// Usage:
//
//	sortbench -algo sort -n 1000000 -pattern random -rounds 20
//	sortbench -algo parallel -workers 8 -pattern sawtooth
//
// Each round re-copies the pattern into the working buffer, sorts it,
// and records the elapsed time into an HDR histogram. The first round
// is also checked against a stdlib-sorted oracle.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/panjf2000/ants/v2"

	"github.com/ajroetker/go-sortkit/sortkit"
	"github.com/ajroetker/go-sortkit/sortkit/contrib/parallel"
)

var (
	algo    = flag.String("algo", "sort", "Algorithm: sort, stable, radix, parallel, parallel-stable")
	n       = flag.Int("n", 1<<20, "Number of elements")
	pattern = flag.String("pattern", "random", "Input pattern: random, sorted, reverse, equal, sawtooth")
	rounds  = flag.Int("rounds", 10, "Number of timed rounds")
	seed    = flag.Int64("seed", 1, "Seed for the random pattern")
	workers = flag.Int("workers", 0, "Pool size for the parallel algorithms (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()

	base, err := makePattern(*pattern, *n, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	var pool *ants.Pool
	if strings.HasPrefix(*algo, "parallel") {
		size := *workers
		if size <= 0 {
			size = runtime.GOMAXPROCS(0)
		}
		pool, err = ants.NewPool(size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: creating pool: %v\n", err)
			os.Exit(1)
		}
		defer pool.Release()
	}

	run, err := pickAlgo(*algo, pool)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	oracle := slices.Clone(base)
	slices.Sort(oracle)

	// Latencies in microseconds, up to a minute per round.
	hist := hdrhistogram.New(1, time.Minute.Microseconds(), 3)

	data := make([]int64, len(base))
	for round := 0; round < *rounds; round++ {
		copy(data, base)
		start := time.Now()
		run(data)
		elapsed := time.Since(start)

		if err := hist.RecordValue(elapsed.Microseconds()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: recording %v: %v\n", elapsed, err)
			os.Exit(1)
		}
		if round == 0 && !slices.Equal(data, oracle) {
			fmt.Fprintf(os.Stderr, "Error: %s produced a wrong ordering on pattern %s\n", *algo, *pattern)
			os.Exit(1)
		}
	}

	fmt.Printf("algo=%s pattern=%s n=%d rounds=%d\n", *algo, *pattern, *n, *rounds)
	fmt.Printf("  p50=%dus p90=%dus p99=%dus max=%dus\n",
		hist.ValueAtQuantile(50),
		hist.ValueAtQuantile(90),
		hist.ValueAtQuantile(99),
		hist.Max())
}

func pickAlgo(name string, pool *ants.Pool) (func([]int64), error) {
	switch name {
	case "sort":
		return func(data []int64) { sortkit.Sort(data) }, nil
	case "stable":
		return func(data []int64) { sortkit.SortStable(data) }, nil
	case "radix":
		return func(data []int64) { sortkit.RadixSort(data) }, nil
	case "parallel":
		return func(data []int64) { parallel.Sort(pool, data) }, nil
	case "parallel-stable":
		return func(data []int64) { parallel.SortStable(pool, data) }, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", name)
}

func makePattern(name string, n int, seed int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative element count %d", n)
	}
	data := make([]int64, n)
	switch name {
	case "random":
		rng := rand.New(rand.NewSource(seed))
		for i := range data {
			data[i] = rng.Int63() - rng.Int63()
		}
	case "sorted":
		for i := range data {
			data[i] = int64(i)
		}
	case "reverse":
		for i := range data {
			data[i] = int64(n - i)
		}
	case "equal":
		for i := range data {
			data[i] = 42
		}
	case "sawtooth":
		for i := range data {
			data[i] = int64(i % 1000)
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	return data, nil
}
