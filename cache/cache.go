package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// The cache is a package used for generic large objects that we want to
// cache, especially when the engine is the backend of a server. For
// example, we cache word lists and rule sets here, so that starting a new
// board does not read and parse them again.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	if !ok {
		err := c.load(key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object stored under key, calling loadFunc to create it
// the first time. A failed load is not cached.
func Load(key string, loadFunc loadFunc) (any, error) {
	createOnce.Do(func() {
		if GlobalObjectCache == nil {
			CreateGlobalObjectCache()
		}
	})
	return GlobalObjectCache.get(key, loadFunc)
}
