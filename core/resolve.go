package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
)

// resolvePracticeNames fills in names for ranked practices. Only practices without a
// dataset name are looked up unless ForceLookup is set. A failed lookup never
// replaces a name the dataset already provided.
func resolvePracticeNames(ctx context.Context, cfg *contract.Config, resolver contract.NameResolver, results []schema.PracticeResult) {
	var (
		idx   []int
		codes []string
	)
	for i := range results {
		if cfg.ForceLookup || strings.TrimSpace(results[i].Name) == "" {
			idx = append(idx, i)
			codes = append(codes, results[i].Code)
		}
	}
	if len(codes) == 0 {
		return
	}

	names := lookupNames(ctx, resolver, codes, cfg.Workers, cfg.LookupTimeout)
	for j, i := range idx {
		if names[j] == schema.UnknownName && strings.TrimSpace(results[i].Name) != "" {
			continue
		}
		results[i].Name = names[j]
	}
}

// lookupNames resolves codes with a pool of workers. The result is aligned with codes.
// Each lookup gets its own timeout when timeout is positive.
func lookupNames(ctx context.Context, resolver contract.NameResolver, codes []string, workers int, timeout time.Duration) []string {
	names := make([]string, len(codes))
	jobCh := make(chan int, len(codes))
	var wg sync.WaitGroup

	for range max(1, min(workers, len(codes))) {
		wg.Go(func() {
			for i := range jobCh {
				names[i] = resolveOne(ctx, resolver, codes[i], timeout)
			}
		})
	}

	for i := range codes {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()

	return names
}

// resolveOne runs a single lookup under an optional timeout.
func resolveOne(ctx context.Context, resolver contract.NameResolver, code string, timeout time.Duration) string {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	name := resolver.Resolve(ctx, code)
	if strings.TrimSpace(name) == "" {
		return schema.UnknownName
	}
	return name
}
