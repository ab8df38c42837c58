// Package service wires the parameter subsystem together for applications:
// it builds the default loader stack (disk cache + HTTP fetcher), owns the
// process-wide registry and prefetches every built-in parameter set
// concurrently.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/poly-layer/snarkVM/keys"
	"github.com/poly-layer/snarkVM/log"
	"github.com/poly-layer/snarkVM/parameters"
)

// Parameters owns the process-wide registry and the loader stack behind it.
type Parameters struct {
	registry *parameters.Registry
}

// New builds the default parameter service: a disk cache rooted at dataDir
// and an HTTP fetcher with the default retry policy. An empty dataDir
// disables the cache; every remote parameter is then fetched per process.
func New(dataDir string) (*Parameters, error) {
	var cache parameters.Cache
	if dataDir != "" {
		diskCache, err := parameters.NewDiskCache(dataDir, nil)
		if err != nil {
			return nil, err
		}
		cache = diskCache
	}
	fetcher := parameters.NewHTTPFetcher(nil, parameters.DefaultRetryPolicy())
	return &Parameters{
		registry: parameters.NewRegistry(parameters.NewLoader(cache, fetcher)),
	}, nil
}

// Registry returns the process-wide parameter registry.
func (p *Parameters) Registry() *parameters.Registry {
	return p.registry
}

// Prefetch downloads and verifies all the built-in parameters concurrently:
// every function set, the universal SRS and the embedded genesis block.
func (p *Parameters) Prefetch(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	for _, set := range keys.AllSets() {
		g.Go(func() error {
			return set.Download(ctx, p.registry)
		})
	}
	g.Go(func() error {
		_, err := p.registry.Resolve(ctx, keys.UniversalSRS)
		return err
	})
	g.Go(func() error {
		_, err := p.registry.Resolve(ctx, parameters.GenesisBlock())
		return err
	})
	log.Infow("prefetching snarkVM parameters", "timeout", timeout)
	return g.Wait()
}

// PrefetchVerifierOnly downloads only what a verifier-only node needs: the
// verifying keys of every function set and the genesis block.
func (p *Parameters) PrefetchVerifierOnly(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	for _, set := range keys.AllSets() {
		g.Go(func() error {
			_, err := set.VerifyingKey(ctx, p.registry)
			return err
		})
	}
	g.Go(func() error {
		_, err := p.registry.Resolve(ctx, parameters.GenesisBlock())
		return err
	})
	log.Infow("prefetching snarkVM verifier parameters", "timeout", timeout)
	return g.Wait()
}
