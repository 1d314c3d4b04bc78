// Package cache provides a small generic LRU used to memoize derived
// data that is expensive to rebuild, such as noise fields and their
// equalization tables.
//
//	c := cache.New[noise.Config, *entry](32)
//	e := c.GetOrCreate(cfg, func() *entry { return build(cfg) })
//
// A Cache is safe for concurrent use. The create callback runs under the
// cache lock, so concurrent callers asking for the same key build it once.
package cache
