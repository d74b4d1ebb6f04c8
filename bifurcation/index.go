package bifurcation

import (
	"sync"

	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/synteny/dnaseq"
)

// numShards splits the table 256 ways, bounding lock contention and
// per-shard map growth.
const numShards = 256

// Index is the persistent mapping from strand-iterator (compared as k-mer
// content) to bifurcation id. It is the only collaborator
// the enumerator writes into; it has no other callers during a single
// EnumerateBifurcations run, but the sharded locking makes it safe to read
// from other goroutines once population is complete.
type Index interface {
	// Clear empties the index.
	Clear()
	// AddPoint records that the length-k k-mer starting at it is a
	// bifurcation with identifier id.
	AddPoint(it dnaseq.StrandIterator, k int, id int32)
	// GetBifurcation looks up the length-k k-mer starting at it, returning
	// its id or NoBifurcation.
	GetBifurcation(it dnaseq.StrandIterator, k int) int32
}

type shard struct {
	mu sync.RWMutex
	m  map[string]int32
}

// ShardedIndex is a farm-hash-sharded Index implementation.
type ShardedIndex struct {
	shards [numShards]*shard
}

// NewShardedIndex constructs an empty ShardedIndex.
func NewShardedIndex() *ShardedIndex {
	idx := &ShardedIndex{}
	for i := range idx.shards {
		idx.shards[i] = &shard{m: make(map[string]int32)}
	}
	return idx
}

func (idx *ShardedIndex) shardFor(content string) *shard {
	h := farm.Hash64WithSeed([]byte(content), 0)
	return idx.shards[h%numShards]
}

// Clear implements Index.
func (idx *ShardedIndex) Clear() {
	for i := range idx.shards {
		idx.shards[i] = &shard{m: make(map[string]int32)}
	}
}

// AddPoint implements Index.
func (idx *ShardedIndex) AddPoint(it dnaseq.StrandIterator, k int, id int32) {
	content := dnaseq.KMerContent(it, k)
	s := idx.shardFor(content)
	s.mu.Lock()
	s.m[content] = id
	s.mu.Unlock()
}

// GetBifurcation implements Index.
func (idx *ShardedIndex) GetBifurcation(it dnaseq.StrandIterator, k int) int32 {
	content := dnaseq.KMerContent(it, k)
	s := idx.shardFor(content)
	s.mu.RLock()
	id, ok := s.m[content]
	s.mu.RUnlock()
	if !ok {
		return NoBifurcation
	}
	return id
}
