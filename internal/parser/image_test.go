package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{
			name:     "Mid-range id",
			id:       "169486382",
			expected: "https://basket-1694.wbbasket.ru/vol1694/part169486/169486382/images/c516x688/1.jpg",
		},
		{
			name:     "Small id pads the host to two digits",
			id:       "123456",
			expected: "https://basket-01.wbbasket.ru/vol1/part123/123456/images/c516x688/1.jpg",
		},
		{
			name:     "Id below the first shard",
			id:       "999",
			expected: "https://basket-00.wbbasket.ru/vol0/part0/999/images/c516x688/1.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURL(tt.id))
		})
	}
}

func TestImageURLFallsBackToPlaceholder(t *testing.T) {
	for _, id := range []string{"", "abc", "12a34", "-5"} {
		assert.Equal(t, PlaceholderImageURL, ImageURL(id), "id %q", id)
	}
}
