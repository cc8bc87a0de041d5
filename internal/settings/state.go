package settings

type cacheState int

const (
	uninitialized cacheState = iota
	loaded
)

// cache holds the manager's settings object. Once loaded, value came from
// exactly one file on disk, recorded in source.
type cache[T Settings] struct {
	state  cacheState
	value  T
	source string
}

func (c *cache[T]) set(value T, source string) {
	c.state = loaded
	c.value = value
	c.source = source
}

func (c *cache[T]) get() (T, bool) {
	return c.value, c.state == loaded
}
