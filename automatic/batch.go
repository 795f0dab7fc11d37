package automatic

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mwilbur/iago/config"
	"github.com/mwilbur/iago/turnplayer"
)

// A ControllerFactory builds a fresh controller for game number idx.
// Batches need one controller per game because strategies are not
// safe for concurrent use.
type ControllerFactory func(idx int) turnplayer.Controller

// RandomFactory returns a factory producing random-move controllers,
// each seeded from its own entry in seeds.
func RandomFactory(seeds []uint64) ControllerFactory {
	return func(idx int) turnplayer.Controller {
		return turnplayer.Random(seeds[idx%len(seeds)])
	}
}

// AlphaBetaFactory returns a factory producing search controllers at
// the given depth.
func AlphaBetaFactory(depth int) ControllerFactory {
	return func(idx int) turnplayer.Controller {
		return turnplayer.AlphaBeta(depth)
	}
}

// PlayBatch plays numGames self-play games across threads worker
// goroutines and aggregates the outcomes. Per-move CSV rows go to
// logWriter when it is non-nil. Cancelling ctx stops the batch early;
// games already finished still count.
func PlayBatch(ctx context.Context, cfg *config.Config, numGames, threads int,
	makeBlack, makeWhite ControllerFactory, logWriter io.Writer) (*BatchStats, error) {

	if threads < 1 {
		threads = 1
	}
	logChan := make(chan string, 100)
	resultChan := make(chan Result, 100)

	var writerWG sync.WaitGroup
	writerWG.Add(1)
	go func() {
		defer writerWG.Done()
		if logWriter != nil {
			io.WriteString(logWriter, LogHeader)
		}
		for line := range logChan {
			if logWriter != nil {
				io.WriteString(logWriter, line)
			}
		}
	}()

	stats := NewBatchStats()
	var statsWG sync.WaitGroup
	statsWG.Add(1)
	go func() {
		defer statsWG.Done()
		for res := range resultChan {
			stats.Add(res)
		}
	}()

	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			runner := NewGameRunner(logChan, cfg)
			for idx := range jobs {
				runner.Reset(idx, makeBlack(idx), makeWhite(idx))
				res := runner.PlayFull()
				select {
				case resultChan <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	err := g.Wait()
	close(logChan)
	close(resultChan)
	writerWG.Wait()
	statsWG.Wait()
	log.Info().Int("games", stats.Games()).Msg("batch-done")
	return stats, err
}
