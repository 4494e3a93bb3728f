package fastparser

import "sync"

// scratchPool is a sync.Pool for the []byte buffers that unquoted field
// content is assembled in. The tokenizer itself never touches it.
var scratchPool = sync.Pool{
	New: func() interface{} {
		// Pre-allocate with capacity for typical field content
		b := make([]byte, 0, 64)
		return &b
	},
}

// maxScratchCapacity bounds the buffers kept in the pool so one huge field
// does not pin memory.
const maxScratchCapacity = 64 * 1024

// GetScratch gets a buffer from the pool with length 0.
func GetScratch() *[]byte {
	p := scratchPool.Get().(*[]byte)
	*p = (*p)[:0]
	return p
}

// PutScratch returns a buffer to the pool. Store the grown slice back into p
// before calling it.
func PutScratch(p *[]byte) {
	if p == nil || cap(*p) > maxScratchCapacity {
		return
	}
	*p = (*p)[:0]
	scratchPool.Put(p)
}
