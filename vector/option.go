package vector

import (
	"github.com/glpuga/ekucontainers/mem"
	"go.uber.org/zap"
)

const (
	// defaultBlockSize capacity is always rounded up to a whole number of
	// blocks when the buffer grows
	defaultBlockSize = 1024
)

// Option vector option
type Option[T any] func(*Vector[T])

// WithAllocator set the allocator used to reserve and release element
// storage. Blocks allocated by it are returned to it when the vector grows
// or is closed.
func WithAllocator[T any](alloc mem.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = alloc
	}
}

// WithPolicy set the allocator propagation policy used by CopyFrom, MoveFrom
// and Take to decide between O(1) buffer transfer and element-wise transfer.
func WithPolicy[T any](policy mem.Policy) Option[T] {
	return func(v *Vector[T]) {
		v.policy = policy
		v.policySet = true
	}
}

// WithBlockSize set the growth block size. Whenever the buffer grows, the new
// capacity is the smallest multiple of the block size that fits the request.
func WithBlockSize[T any](blockSize int) Option[T] {
	return func(v *Vector[T]) {
		v.options.blockSize = blockSize
	}
}

// WithLogger set logger for the vector
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(v *Vector[T]) {
		v.options.logger = logger
	}
}
