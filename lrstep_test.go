package lrstep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	assert.Equal(t, uint64(3), s.From())
	assert.Equal(t, uint64(7), s.To())
	assert.Equal(t, uint64(4), s.Len())
	assert.False(t, s.IsNull())
	assert.True(t, Span{}.IsNull())
	assert.Equal(t, "(3…7)", s.String())
}

func TestSpanExtend(t *testing.T) {
	var tests = []struct {
		a, b, ext Span
	}{
		{Span{3, 7}, Span{7, 9}, Span{3, 9}},
		{Span{3, 7}, Span{1, 4}, Span{1, 7}},
		{Span{}, Span{2, 5}, Span{2, 5}},
		{Span{2, 5}, Span{}, Span{2, 5}},
		{Span{0, 2}, Span{4, 6}, Span{0, 6}},
	}
	for i, test := range tests {
		assert.Equal(t, test.ext, test.a.Extend(test.b), "test #%d", i)
	}
}
