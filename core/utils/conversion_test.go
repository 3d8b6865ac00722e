package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int
	}{
		{name: "Membership level", val: "2", want: 2},
		{name: "Zero", val: "0", want: 0},
		{name: "Absent attribute", val: "", want: 0},
		{name: "Garbage", val: "free", want: 0},
		{name: "Bytes", val: []byte("15"), want: 15},
		{name: "Already int", val: 7, want: 7},
		{name: "Float", val: 3.9, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.val))
		})
	}
}
