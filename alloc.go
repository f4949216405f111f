package decimal

import "sync/atomic"

// Allocator is the injectable resource boundary for the digit-array
// tier's scratch limb buffers. Get(n) must return a slice of length n
// ready to write into (zeroed, as a fresh make([]uint64, n) would be);
// Put returns a buffer the caller no longer needs, allowing reuse. A Put
// buffer must never be read again by the caller, and Get must never
// alias a previously-handed-out, not-yet-Put buffer.
type Allocator interface {
	Get(n int) []uint64
	Put(buf []uint64)
}

// poolAllocator is the default Allocator, backed by digitsPool (a
// sync.Pool).
type poolAllocator struct{}

func (poolAllocator) Get(n int) []uint64 {
	buf := digitsPool.Get().([]uint64)
	if cap(buf) < n {
		return make([]uint64, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func (poolAllocator) Put(buf []uint64) {
	if cap(buf) == 0 {
		return
	}
	//nolint:staticcheck // scratch buffer reuse, not a retained reference
	digitsPool.Put(buf[:0])
}

// activeAllocator holds the process-wide Allocator, swappable via
// SetAllocator. Like defaultRoundingMode, this is one of the few mutable
// globals this package carries; everything else is immutable after
// construction.
var activeAllocator atomic.Value

// allocatorHolder gives every stored Allocator the same concrete type, as
// atomic.Value requires; it implements Allocator through the embedded
// field.
type allocatorHolder struct{ Allocator }

func init() {
	activeAllocator.Store(allocatorHolder{poolAllocator{}})
}

// SetAllocator replaces the process-wide Allocator used for scratch limb
// buffers in the digit-array arithmetic tier. Intended for embedders with
// their own memory budget (e.g. an arena per request); the default is a
// sync.Pool-backed allocator suitable for general use.
func SetAllocator(a Allocator) {
	if a == nil {
		a = poolAllocator{}
	}
	activeAllocator.Store(allocatorHolder{a})
}
