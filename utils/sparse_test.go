package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOK(t *testing.T) {
	// Additive accumulation
	{
		A := NewDOK(3, 3)
		A.Add(1, 1, 2)
		A.Add(1, 1, 0.5)
		A.Add(0, 2, -1)
		assert.Equal(t, 2.5, A.At(1, 1))
		assert.Equal(t, -1., A.At(0, 2))
		assert.Equal(t, 0., A.At(2, 2))
	}
	// Symmetry check
	{
		A := NewDOK(2, 2)
		A.Set(0, 1, 3)
		A.Set(1, 0, 3)
		assert.True(t, A.IsSymmetric(NODETOL))
		A.Set(1, 0, 2)
		assert.False(t, A.IsSymmetric(NODETOL))
	}
}

func TestCSR(t *testing.T) {
	// MulVec against a dense computation
	{
		A := NewDOK(3, 3)
		A.Set(0, 0, 2)
		A.Set(0, 1, -1)
		A.Set(1, 0, -1)
		A.Set(1, 1, 2)
		A.Set(1, 2, -1)
		A.Set(2, 1, -1)
		A.Set(2, 2, 2)
		R := A.ToCSR()
		x := []float64{1, 2, 3}
		dst := make([]float64, 3)
		R.MulVec(dst, x)
		assert.InDeltaSlice(t, []float64{0, 0, 4}, dst, NODETOL)
	}
	// Diagonal extraction
	{
		A := NewDOK(3, 3)
		A.Set(0, 0, 4)
		A.Set(2, 2, -2)
		A.Set(0, 2, 1)
		d := A.ToCSR().Diagonal()
		assert.InDeltaSlice(t, []float64{4, 0, -2}, d, NODETOL)
	}
	// DoRow visits stored entries of one row only
	{
		A := NewDOK(2, 3)
		A.Set(0, 0, 1)
		A.Set(0, 2, 3)
		A.Set(1, 1, 5)
		var cols []int
		var vals []float64
		A.ToCSR().DoRow(0, func(j int, v float64) {
			cols = append(cols, j)
			vals = append(vals, v)
		})
		assert.Equal(t, []int{0, 2}, cols)
		assert.Equal(t, []float64{1, 3}, vals)
	}
}
