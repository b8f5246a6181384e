package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"lrucache/internal/lru"
)

func main() {
	var capacity int
	flag.IntVar(&capacity, "capacity", 2, "Maximum number of cache entries")
	flag.Parse()

	if err := run(capacity); err != nil {
		glog.Fatal("run failed: " + err.Error())
	}
}

func run(capacity int) error {
	c, err := lru.NewWithEvict[string, int](capacity, func(key string, value int) {
		glog.Infof("evicted %s=%d (least recently used)", key, value)
	})
	if err != nil {
		return errors.Wrapf(err, "creating cache with capacity %d", capacity)
	}

	glog.Infof("lrudemo starting, capacity=%d", c.MaxSize())

	// -------------------------------------------------------------------
	// 1) LRU eviction demo (with capacity=2, evicts "b")
	// -------------------------------------------------------------------
	c.Put("a", 1)
	c.Put("b", 2)

	// Touch "a" so "b" becomes least-recently-used.
	if v, ok := c.Get("a"); ok {
		glog.Infof("GET a = %d (touches a -> MRU)", v)
	}

	c.Put("c", 3)
	if _, ok := c.Get("b"); !ok {
		glog.Info("GET b: missing (evicted as LRU)")
	}
	glog.Infof("keys after eviction (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 2) Delete and reset demo
	// -------------------------------------------------------------------
	if c.Delete("a") {
		glog.Infof("DELETE a, %d entries remain", c.Len())
	}
	c.Delete("a") // absent key: no-op

	c.Reset()
	glog.Infof("after reset: len=%d maxSize=%d", c.Len(), c.MaxSize())
	return nil
}
