package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderPair = Pair{
	Interface:      `App\Interfaces\OrderInterface`,
	Implementation: `App\Repositories\OrderRepository`,
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"", ShapeAuto, false},
		{"auto", ShapeAuto, false},
		{"method", ShapeMethodBody, false},
		{" ARRAY ", ShapeArrayLiteral, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindingFor(t *testing.T) {
	method, err := BindingFor(ShapeMethodBody, orderPair)
	require.NoError(t, err)
	assert.Equal(t, `$this->app->bind(\App\Interfaces\OrderInterface::class, \App\Repositories\OrderRepository::class);`, method.Text)

	array, err := BindingFor(ShapeArrayLiteral, orderPair)
	require.NoError(t, err)
	assert.Equal(t, `[\App\Interfaces\OrderInterface::class, \App\Repositories\OrderRepository::class],`, array.Text)

	_, err = BindingFor(ShapeAuto, orderPair)
	assert.Error(t, err, "auto is a selection mode, not a format")
}

func TestBindingFor_LeadingBackslashIsNormalized(t *testing.T) {
	a, err := BindingFor(ShapeMethodBody, orderPair)
	require.NoError(t, err)
	b, err := BindingFor(ShapeMethodBody, Pair{
		Interface:      `\` + orderPair.Interface,
		Implementation: `\` + orderPair.Implementation,
	})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
