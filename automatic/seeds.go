package automatic

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"lukechampine.com/frand"
)

// GenerateSeeds produces n fresh seeds for random-move controllers.
func GenerateSeeds(n int) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = frand.Uint64n(1<<63 - 1)
	}
	return seeds
}

// DeriveSeeds expands one base seed into n per-game seeds so a batch
// is reproducible from a single number. Each seed differs, otherwise
// every game would repeat the same moves.
func DeriveSeeds(base uint64, n int) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		base += 0x9E3779B97F4A7C15
		z := base
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		seeds[i] = z ^ (z >> 31)
	}
	return seeds
}

// SaveSeeds writes seeds to a file, one hex value per line, so a
// batch can be replayed later.
func SaveSeeds(filename string, seeds []uint64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, s := range seeds {
		fmt.Fprintf(w, "%016x\n", s)
	}
	return w.Flush()
}

// LoadSeeds reads a file written by SaveSeeds.
func LoadSeeds(filename string) ([]uint64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var seeds []uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		s, err := strconv.ParseUint(line, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed line %q: %w", line, err)
		}
		seeds = append(seeds, s)
	}
	return seeds, scanner.Err()
}
