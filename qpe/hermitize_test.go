package qpe_test

import (
	"testing"

	"github.com/katalvlaran/qpekit/cmatrix"
	"github.com/katalvlaran/qpekit/qpe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMatrix fills a fresh dense matrix from rows of complex values.
func buildMatrix(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// TestHermitize_BlockStructure verifies B = [[0, A], [A†, 0]] entry by
// entry and Hermiticity of the result for a generic complex A.
func TestHermitize_BlockStructure(t *testing.T) {
	a := buildMatrix(t, [][]complex128{
		{complex(1, 2), complex(-3, 0.5)},
		{complex(0, -1), complex(4, 4)},
	})

	b, cfg, err := qpe.Hermitize(a, qpe.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 4, b.Rows())
	require.Equal(t, 4, b.Cols())

	herm, err := cmatrix.IsHermitian(b, 1e-12)
	require.NoError(t, err)
	assert.True(t, herm, "block embedding must be Hermitian by construction")

	// Upper-right block equals A; lower-left equals A†; diagonals zero.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			ur, err := b.At(i, 2+j)
			require.NoError(t, err)
			assert.Equal(t, av, ur, "B[%d][%d+2] = A[%d][%d]", i, j, i, j)

			ll, err := b.At(2+j, i)
			require.NoError(t, err)
			assert.Equal(t, complex(real(av), -imag(av)), ll, "lower-left block is A†")

			z, err := b.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, z, "upper-left block is zero")
			z, err = b.At(2+i, 2+j)
			require.NoError(t, err)
			assert.Zero(t, z, "lower-right block is zero")
		}
	}

	assert.True(t, cfg.NegativeEvals, "sign slot is structurally required")
	assert.True(t, cfg.HermitianMatrix, "result is declared Hermitian")
}

// TestHermitize_Validation rejects nil and non-square inputs and leaves
// the input configuration untouched.
func TestHermitize_Validation(t *testing.T) {
	cfg := qpe.DefaultConfig()

	_, _, err := qpe.Hermitize(nil, cfg)
	assert.ErrorIs(t, err, cmatrix.ErrNilMatrix)

	rect, err := cmatrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = qpe.Hermitize(rect, cfg)
	assert.ErrorIs(t, err, qpe.ErrNonSquare)

	assert.False(t, cfg.NegativeEvals, "caller's config is never mutated")
}

// TestPrepareMatrix passes declared-Hermitian inputs through and embeds
// everything else.
func TestPrepareMatrix(t *testing.T) {
	a := buildMatrix(t, [][]complex128{
		{1, 0},
		{0, -1},
	})

	cfg := qpe.DefaultConfig() // HermitianMatrix = true
	out, outCfg, err := qpe.PrepareMatrix(a, cfg)
	require.NoError(t, err)
	assert.Same(t, a, out, "Hermitian sources pass through untouched")
	assert.Equal(t, cfg, outCfg)

	cfg.HermitianMatrix = false
	out, outCfg, err = qpe.PrepareMatrix(a, cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rows(), "non-Hermitian sources get embedded")
	assert.True(t, outCfg.NegativeEvals)
}
