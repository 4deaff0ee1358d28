// Package hipmatmul reference implementations for verification
package hipmatmul

// Reference contains simple, correct implementations used for testing and
// verification of the concurrent engine. The reference path has no tiles,
// no lanes, and no barrier: it reconstructs the full operand matrices from
// the per-lane layout and runs a plain serial matrix multiply-accumulate.
type Reference struct{}

// ExpandA reconstructs the 16x4 A matrix from the per-lane layout, where
// A(m, k) lives at a[16*k+m].
func (Reference) ExpandA(a []float32) [TileM][TileK]float32 {
	var A [TileM][TileK]float32
	for k := 0; k < TileK; k++ {
		for m := 0; m < TileM; m++ {
			A[m][k] = a[TileM*k+m]
		}
	}
	return A
}

// ExpandB reconstructs the 4x16 B matrix from the per-lane layout, where
// B(k, n) lives at b[16*k+n].
func (Reference) ExpandB(b []float32) [TileK][TileN]float32 {
	var B [TileK][TileN]float32
	for k := 0; k < TileK; k++ {
		for n := 0; n < TileN; n++ {
			B[k][n] = b[TileN*k+n]
		}
	}
	return B
}

// ExpandC reconstructs the 16x16 C matrix from the per-lane fragments.
// Lane i holds C rows m..m+3 of column n, with m = 4*(i/16) and n = i%16.
func (Reference) ExpandC(c []Float4) [TileM][TileN]float32 {
	var C [TileM][TileN]float32
	for i := 0; i < ThreadsPerSubgroup; i++ {
		m := FragmentLen * (i / TileM)
		n := i % TileN
		for p := 0; p < FragmentLen; p++ {
			C[m+p][n] = c[i][p]
		}
	}
	return C
}

// PackC scatters a full 16x16 C matrix back into per-lane fragments, the
// inverse of ExpandC.
func (Reference) PackC(C [TileM][TileN]float32, c []Float4) {
	for i := 0; i < ThreadsPerSubgroup; i++ {
		m := FragmentLen * (i / TileM)
		n := i % TileN
		for p := 0; p < FragmentLen; p++ {
			c[i][p] = C[m+p][n]
		}
	}
}

// MatmulF32_16x16x4 performs one MFMA instruction's worth of work serially:
// C += A*B on the reconstructed 16x4 and 4x16 matrices, accumulated onto the
// incoming fragments, written back in per-lane layout. The k reduction runs
// in ascending order, the same order the engine uses, so results are
// bit-identical to the concurrent path and tests can compare exactly.
func (r Reference) MatmulF32_16x16x4(a, b []float32, c []Float4) {
	A := r.ExpandA(a)
	B := r.ExpandB(b)
	C := r.ExpandC(c)

	for m := 0; m < TileM; m++ {
		for n := 0; n < TileN; n++ {
			for k := 0; k < TileK; k++ {
				C[m][n] += A[m][k] * B[k][n]
			}
		}
	}

	r.PackC(C, c)
}
