// Package walk drives field visits over sets of objects. Each worker owns
// its own Visitor and Sink, so concurrent visits never interleave; per
// worker outcomes are joined into one result slice after completion.
package walk

import (
	"context"
	"sync"

	"github.com/viant/heaply"
	"github.com/viant/heaply/catalog"
)

type (
	//Target pairs an object handle with its catalog type key
	Target struct {
		Handle  heaply.ObjectHandle
		TypeKey string
	}

	//Result represents the outcome of one object visit
	Result struct {
		Identity heaply.Ref
		TypeKey  string
		Err      error
	}

	//Walker represents a concurrent visit driver
	Walker struct {
		catalog  catalog.Catalog
		newSink  func() heaply.Sink
		platform *heaply.Platform
		workers  int
		logger   Logger
	}

	//WalkerOption represents a walker option
	WalkerOption func(w *Walker)
)

// WithWorkers sets the worker count
func WithWorkers(workers int) WalkerOption {
	return func(w *Walker) {
		w.workers = workers
	}
}

// WithLogger sets the walker logger
func WithLogger(logger Logger) WalkerOption {
	return func(w *Walker) {
		w.logger = logger
	}
}

// WithPlatform sets the foreign platform model
func WithPlatform(platform *heaply.Platform) WalkerOption {
	return func(w *Walker) {
		w.platform = platform
	}
}

// NewWalker creates a walker; newSink is invoked once per worker so sinks
// are never shared across visits.
func NewWalker(aCatalog catalog.Catalog, newSink func() heaply.Sink, opts ...WalkerOption) *Walker {
	result := &Walker{
		catalog:  aCatalog,
		newSink:  newSink,
		platform: heaply.LocalPlatform(),
		workers:  1,
		logger:   DiscardLogger{},
	}
	for _, opt := range opts {
		opt(result)
	}
	if result.workers < 1 {
		result.workers = 1
	}
	return result
}

// Walk visits every target, one result per target in input order. A failed
// object never blocks the remaining objects. Cancellation is honored
// between objects and between fields; an interrupted visit still closes
// its prologue/epilogue bracket.
func (w *Walker) Walk(ctx context.Context, targets []Target) []Result {
	results := make([]Result, len(targets))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			visitor := heaply.New(w.newSink(), heaply.WithPlatform(w.platform))
			for index := range jobs {
				target := targets[index]
				result := Result{TypeKey: target.TypeKey}
				if target.Handle != nil {
					result.Identity = target.Handle.Identity()
				}
				if err := w.visit(ctx, visitor, target); err != nil {
					w.logger.Warn("visit failed", "object", result.Identity, "type", target.TypeKey, "err", err)
					result.Err = err
				}
				results[index] = result
			}
		}()
	}
	for index := range targets {
		jobs <- index
	}
	close(jobs)
	wg.Wait()
	return results
}

func (w *Walker) visit(ctx context.Context, visitor *heaply.Visitor, target Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fields, err := w.catalog.Fields(target.TypeKey)
	if err != nil {
		return err
	}
	if err := visitor.Bind(target.Handle); err != nil {
		return err
	}
	if err := visitor.Begin(); err != nil {
		return err
	}
	var visitErr error
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			visitErr = err
			break
		}
		if err := visitor.VisitField(field); err != nil {
			visitErr = err
			break
		}
	}
	if err := visitor.End(); visitErr == nil {
		visitErr = err
	}
	return visitErr
}
