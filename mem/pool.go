package mem

import (
	"sync"
)

const (
	defaultMinBlock = 128
	defaultMaxBlock = 64 * 1024
)

type pooledAllocator[T any] struct {
	minBlock int
	maxBlock int
	classes  []int
	pools    []*sync.Pool
}

// Pooled returns an allocator that recycles freed blocks through per-size
// pools. Block sizes are rounded up to a power-of-two ladder between minBlock
// and maxBlock; requests above maxBlock fall through to the heap and are not
// recycled. minBlock and maxBlock of 0 select the defaults.
func Pooled[T any](minBlock, maxBlock int) Allocator[T] {
	if minBlock <= 0 {
		minBlock = defaultMinBlock
	}
	if maxBlock <= 0 {
		maxBlock = defaultMaxBlock
	}
	if maxBlock < minBlock {
		maxBlock = minBlock
	}

	p := &pooledAllocator[T]{
		minBlock: minBlock,
		maxBlock: maxBlock,
	}
	for size := minBlock; size <= maxBlock; size *= 2 {
		size := size
		p.classes = append(p.classes, size)
		p.pools = append(p.pools, &sync.Pool{
			New: func() any {
				block := make([]T, size)
				return &block
			},
		})
	}
	return p
}

func (p *pooledAllocator[T]) class(n int) int {
	for i, size := range p.classes {
		if n <= size {
			return i
		}
	}
	return -1
}

func (p *pooledAllocator[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	idx := p.class(n)
	if idx < 0 {
		return make([]T, n)
	}
	block := *p.pools[idx].Get().(*[]T)
	return block[:n]
}

func (p *pooledAllocator[T]) Free(block []T) {
	c := cap(block)
	if c == 0 {
		return
	}
	idx := p.class(c)
	if idx < 0 || p.classes[idx] != c {
		// not one of ours, or oversized. Leave it to the collector.
		return
	}
	block = block[:c]
	var zero T
	for i := range block {
		block[i] = zero
	}
	p.pools[idx].Put(&block)
}

func (p *pooledAllocator[T]) Construct(slot *T, value T) {
	*slot = value
}

func (p *pooledAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}
