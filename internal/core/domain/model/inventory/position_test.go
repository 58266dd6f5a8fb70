package inventory_test

import (
	"testing"

	"yms/internal/core/domain/model/inventory"

	"github.com/stretchr/testify/assert"
)

func TestNextFreePosition(t *testing.T) {
	tests := []struct {
		name     string
		occupied []int
		capacity int
		want     int
	}{
		{"gap_at_start", []int{2, 3, 5}, 5, 1},
		{"all_taken_signals_overflow", []int{1, 2, 3}, 3, 4},
		{"empty_yard", nil, 10, 1},
		{"small_site_full", []int{1, 2}, 2, 3},
		{"gap_in_middle", []int{1, 2, 4, 5}, 5, 3},
		{"positions_out_of_order", []int{5, 1, 3}, 5, 2},
		{"zero_capacity", nil, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.NextFreePosition(tt.occupied, tt.capacity)

			assert.Equal(t, tt.want, got)
		})
	}
}
