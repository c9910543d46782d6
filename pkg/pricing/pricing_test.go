package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		hours    int
		expected float64
	}{
		{name: "whole rate two hours", rate: 500, hours: 2, expected: 1000},
		{name: "single hour", rate: 750, hours: 1, expected: 750},
		{name: "max duration", rate: 500, hours: 6, expected: 3000},
		{name: "fractional rate rounds half up", rate: 333.335, hours: 1, expected: 333.34},
		{name: "fractional rate times hours", rate: 549.50, hours: 3, expected: 1648.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Price(tt.rate, tt.hours))
		})
	}
}
