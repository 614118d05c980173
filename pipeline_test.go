package sprite3d

import (
	"sync/atomic"
	"testing"
)

func TestTask_VisitsEveryElementOnce(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		size    int
	}{
		{"empty", 4, 0},
		{"single element", 4, 1},
		{"one worker", 1, 100},
		{"zero workers", 0, 10},
		{"more workers than data", 16, 5},
		{"uneven chunks", 3, 100},
		{"even chunks", 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.size)
			for i := range data {
				data[i] = i
			}
			visits := make([]atomic.Int32, tt.size)

			task(tt.workers, data, func(i int) {
				visits[i].Add(1)
			})

			for i := range visits {
				if n := visits[i].Load(); n != 1 {
					t.Errorf("element %d visited %d times, want 1", i, n)
				}
			}
		})
	}
}
