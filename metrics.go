package vector

import "unsafe"

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no storage.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Reallocs returns the number of times the backing storage was replaced
// with a larger block since construction.
func (v *Vector[T]) Reallocs() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	var zero T
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.Cap(),
		Reallocs:    v.reallocs,
		ElemSize:    unsafe.Sizeof(zero),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Reallocs    int     // Storage replacements since construction
	ElemSize    uintptr // Bytes per slot
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
