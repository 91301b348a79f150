package runtime

import (
	"hash/fnv"
	"sync"
)

const lockShards = 256

// KeyLock serializes work on the same conversation key while distinct keys
// mostly proceed in parallel. Keys are hashed onto a fixed set of mutexes, so
// the table never grows; two keys may share a shard.
type KeyLock struct {
	shards [lockShards]sync.Mutex
}

func NewKeyLock() *KeyLock {
	return &KeyLock{}
}

// Lock acquires the shard of key and returns its unlock function.
func (l *KeyLock) Lock(key string) func() {
	m := &l.shards[shardOf(key)]
	m.Lock()
	return m.Unlock
}

func shardOf(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % lockShards
}
