package conv

import (
	"fmt"
	"sync"

	"github.com/viant/schemaconv/schema"
)

// Cache pools converters per type pair, an acquired converter is owned by the caller until released
type Cache struct {
	options []Option
	pools   sync.Map // map[cacheKey]*sync.Pool
}

type cacheKey struct {
	source      string
	destination string
}

// Acquire returns pooled or newly built converter
func (c *Cache) Acquire(source, destination *schema.Type) (Converter, error) {
	key, err := keyOf(source, destination)
	if err != nil {
		return nil, err
	}
	if pool, ok := c.pools.Load(key); ok {
		if converter, ok := pool.(*sync.Pool).Get().(Converter); ok {
			return converter, nil
		}
	}
	return New(source, destination, c.options...)
}

// Release returns converter to the pool
func (c *Cache) Release(source, destination *schema.Type, converter Converter) {
	if converter == nil {
		return
	}
	key, err := keyOf(source, destination)
	if err != nil {
		return
	}
	pool, _ := c.pools.LoadOrStore(key, &sync.Pool{})
	pool.(*sync.Pool).Put(converter)
}

func keyOf(source, destination *schema.Type) (cacheKey, error) {
	if source == nil || destination == nil {
		return cacheKey{}, fmt.Errorf("%w: source and destination are required", schema.ErrInvalidType)
	}
	if err := source.Validate(); err != nil {
		return cacheKey{}, fmt.Errorf("invalid source type: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return cacheKey{}, fmt.Errorf("invalid destination type: %w", err)
	}
	return cacheKey{source: source.String(), destination: destination.String()}, nil
}

// NewCache creates a converter cache
func NewCache(opts ...Option) *Cache {
	return &Cache{options: opts}
}
