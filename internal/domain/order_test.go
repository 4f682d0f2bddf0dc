package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidRating(t *testing.T) {
	tests := []struct {
		name   string
		rating *int
		want   bool
	}{
		{"nil", nil, false},
		{"in range low", intPtr(1), true},
		{"in range high", intPtr(5), true},
		{"below range", intPtr(0), false},
		{"above range", intPtr(6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rated := RatedOrder{CustomerRating: tt.rating}
			_, ok := rated.ValidRating()
			assert.Equal(t, tt.want, ok)

			reviewed := ReviewedOrder{CustomerRating: tt.rating}
			_, ok = reviewed.ValidRating()
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestOrderItemUnits(t *testing.T) {
	item := OrderItem{Quantity: 3}
	assert.Equal(t, 3, item.Units())

	// Missing quantity counts as a single unit.
	item = OrderItem{}
	assert.Equal(t, 1, item.Units())
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.FullName())

	u = User{FirstName: "Ada"}
	assert.Equal(t, "Ada", u.FullName())

	u = User{}
	assert.Equal(t, "", u.FullName())
}
