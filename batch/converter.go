package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/viant/schemaconv/conv"
	"github.com/viant/schemaconv/schema"
)

// Converter converts row batches on a bounded worker pool, every worker uses its own converter instance
type Converter struct {
	source      *schema.Type
	destination *schema.Type
	cache       *conv.Cache
	pool        *ants.Pool
	options     *options
}

// Convert converts rows preserving their order, the first error cancels remaining work
func (c *Converter) Convert(ctx context.Context, rows []interface{}) ([]interface{}, error) {
	started := time.Now()
	ret := make([]interface{}, len(rows))
	if len(rows) == 0 {
		return ret, nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		waitGroup sync.WaitGroup
		once      sync.Once
		nullRows  int
		mux       sync.Mutex
		firstErr  error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}
	chunkSize := (len(rows) + c.options.workers - 1) / c.options.workers
	for offset := 0; offset < len(rows); offset += chunkSize {
		end := min(offset+chunkSize, len(rows))
		waitGroup.Add(1)
		err := c.pool.Submit(func() {
			defer waitGroup.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(fmt.Errorf("conversion panic: %v", r))
				}
			}()
			nulls, err := c.convertChunk(ctx, offset, rows[offset:end], ret[offset:end])
			if err != nil {
				fail(err)
				return
			}
			mux.Lock()
			nullRows += nulls
			mux.Unlock()
		})
		if err != nil {
			waitGroup.Done()
			fail(fmt.Errorf("failed to schedule conversion: %w", err))
			break
		}
	}
	waitGroup.Wait()
	c.options.metrics.observe(len(rows), nullRows, firstErr, started)
	if firstErr != nil {
		return nil, firstErr
	}
	return ret, nil
}

func (c *Converter) convertChunk(ctx context.Context, offset int, rows, output []interface{}) (int, error) {
	converter, err := c.cache.Acquire(c.source, c.destination)
	if err != nil {
		return 0, err
	}
	defer c.cache.Release(c.source, c.destination, converter)
	nullRows := 0
	for i, row := range rows {
		if err = ctx.Err(); err != nil {
			return nullRows, err
		}
		if output[i], err = converter.Convert(row); err != nil {
			return nullRows, fmt.Errorf("failed to convert row %v: %w", offset+i, err)
		}
		if output[i] == nil {
			nullRows++
		}
	}
	return nullRows, nil
}

// Close releases worker pool
func (c *Converter) Close() {
	c.pool.Release()
}

// New creates a batch converter
func New(source, destination *schema.Type, opts ...Option) (*Converter, error) {
	options := newOptions(opts)
	cache := conv.NewCache(options.convOptions...)
	converter, err := cache.Acquire(source, destination)
	if err != nil {
		return nil, err
	}
	cache.Release(source, destination, converter)
	pool, err := ants.NewPool(options.workers, ants.WithPanicHandler(func(v any) {
		options.logger.Error("conversion worker panic", "panic", v)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	return &Converter{source: source, destination: destination, cache: cache, pool: pool, options: options}, nil
}
