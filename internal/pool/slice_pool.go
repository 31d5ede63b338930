package pool

import "sync"

// float64SlicePool reuses value slices across statistic and delta-decode
// calls to cut allocation churn on hot paths.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of the requested length from
// the pool, allocating a fresh slice when the pooled one has insufficient
// capacity. The caller must invoke the returned cleanup function
// (typically with defer) to return the slice to the pool.
//
// Example:
//
//	values, cleanup := pool.GetFloat64Slice(1000)
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { float64SlicePool.Put(ptr) }
}
