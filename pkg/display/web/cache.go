package web

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a fixed size ring of the frames sent to one client. The
// client keeps the same ring, so a repeated frame only needs its
// index to be sent.
type cache struct {
	cache []*cacheEntry
	idx   int
	size  int
}

func newCache(size int) *cache {
	c := &cache{
		cache: make([]*cacheEntry, size),
		size:  size,
	}
	for i := 0; i < size; i++ {
		c.cache[i] = &cacheEntry{}
	}

	return c
}

// add stores output under hash, evicting the oldest entry, and
// returns the index it was stored at.
func (c *cache) add(hash uint64, output []byte) int {
	i := c.idx
	c.cache[i].data = output
	c.cache[i].hash = hash

	c.idx = (c.idx + 1) % c.size
	return i
}

// index returns the index of hash, or -1 if it isn't cached.
func (c *cache) index(hash uint64) int {
	for i, e := range c.cache {
		if e.data != nil && e.hash == hash {
			return i
		}
	}

	return -1
}
