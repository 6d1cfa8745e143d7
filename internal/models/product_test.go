package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Wildberries", "169486382")
	require.NoError(t, err)
	assert.Equal(t, "Wildberries", p.Marketplace)
	assert.Equal(t, "169486382", p.ProductID)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.Feedbacks)
}

func TestNewProductRequiresID(t *testing.T) {
	p, err := NewProduct("Wildberries", "")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrMissingProductID)
}
