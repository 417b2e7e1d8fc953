// Package cache provides a small generic LRU cache.
//
//	c := cache.New[float64, *color.LUT](64)
//	lut := c.GetOrCreate(gamma, func() *color.LUT { ... })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
