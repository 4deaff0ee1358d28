// Package hipmatmul test-matrix construction and pretty-printing
package hipmatmul

import (
	"fmt"
	"io"
)

// InitTestMatrices fills a, b, and c with the standard demonstration
// pattern: A and B are identity-like (1 where the reconstructed row and
// column agree modulo the tile shape, 0 elsewhere), and lane i's fragment is
// seeded with {i, 0, 0, 0} so the accumulate-onto-C behavior is visible in
// the output. Slices must each hold ThreadsPerSubgroup elements.
func InitTestMatrices(a, b []float32, c []Float4) {
	for i := 0; i < ThreadsPerSubgroup; i++ {
		var v float32
		if i/TileM == i%TileK {
			v = 1
		}
		a[i] = v
		b[i] = v
		c[i] = Float4{float32(i)}
	}
}

// FprintAMatrix writes the 16x4 A matrix reconstructed from the per-lane
// layout, one row of A per line. A(m, k) lives at a[16*k+m].
func FprintAMatrix(w io.Writer, label string, a []float32) {
	fmt.Fprintf(w, "%s:\n", label)
	for m := 0; m < TileM; m++ {
		for k := 0; k < TileK; k++ {
			fmt.Fprintf(w, "%4g ", a[TileM*k+m])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// FprintBMatrix writes the 4x16 B matrix reconstructed from the per-lane
// layout. B(k, n) lives at b[16*k+n].
func FprintBMatrix(w io.Writer, label string, b []float32) {
	fmt.Fprintf(w, "%s:\n", label)
	for k := 0; k < TileK; k++ {
		for n := 0; n < TileN; n++ {
			fmt.Fprintf(w, "%4g ", b[TileN*k+n])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// FprintCMatrix writes the 16x16 C matrix reconstructed from the per-lane
// fragments. Lane 16*(m/4)+n holds C rows m..m+3 of column n in its
// fragment, so rows are emitted four at a time.
func FprintCMatrix(w io.Writer, label string, c []Float4) {
	fmt.Fprintf(w, "%s:\n", label)
	for m := 0; m < TileM; m += FragmentLen {
		for p := 0; p < FragmentLen; p++ {
			for n := 0; n < TileN; n++ {
				fmt.Fprintf(w, "%4g ", c[FragmentLen*m+n][p])
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
}
