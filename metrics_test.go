package vector

import (
	"testing"
	"unsafe"
)

func TestUtilization(t *testing.T) {
	v := New[int]()
	if v.Utilization() != 0 {
		t.Errorf("empty vector utilization = %f, want 0", v.Utilization())
	}

	for i := 0; i < 3; i++ {
		if err := v.Append(i); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if got := v.Utilization(); got != 0.75 {
		t.Errorf("utilization at 3/4 = %f, want 0.75", got)
	}
}

func TestReallocsFollowGrowth(t *testing.T) {
	tests := []struct {
		appends      int
		wantReallocs int
	}{
		{1, 1}, // 0 -> 1
		{2, 2}, // 1 -> 2
		{3, 3}, // 2 -> 4
		{4, 3},
		{5, 4}, // 4 -> 8
		{8, 4},
		{9, 5}, // 8 -> 16
	}

	for _, tt := range tests {
		v := New[int]()
		for i := 0; i < tt.appends; i++ {
			if err := v.Append(i); err != nil {
				t.Fatalf("Append: %v", err)
			}
		}
		if v.Reallocs() != tt.wantReallocs {
			t.Errorf("after %d appends: reallocs = %d, want %d",
				tt.appends, v.Reallocs(), tt.wantReallocs)
		}
	}
}

func TestMetricsSnapshot(t *testing.T) {
	v := New[int64]()
	for i := 0; i < 5; i++ {
		if err := v.Append(int64(i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	m := v.Metrics()
	if m.Len != 5 || m.Cap != 8 {
		t.Errorf("Len, Cap = %d, %d, want 5, 8", m.Len, m.Cap)
	}
	if m.Reallocs != 4 {
		t.Errorf("Reallocs = %d, want 4", m.Reallocs)
	}
	if m.ElemSize != unsafe.Sizeof(int64(0)) {
		t.Errorf("ElemSize = %d, want %d", m.ElemSize, unsafe.Sizeof(int64(0)))
	}
	if m.Utilization != 0.625 {
		t.Errorf("Utilization = %f, want 0.625", m.Utilization)
	}
}
