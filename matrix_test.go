package hipmatmul

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestInitTestMatrices(t *testing.T) {
	a := make([]float32, ThreadsPerSubgroup)
	b := make([]float32, ThreadsPerSubgroup)
	c := make([]Float4, ThreadsPerSubgroup)
	InitTestMatrices(a, b, c)

	for i := 0; i < ThreadsPerSubgroup; i++ {
		var want float32
		if i/TileM == i%TileK {
			want = 1
		}
		if a[i] != want {
			t.Errorf("a[%d] = %g, want %g", i, a[i], want)
		}
		if b[i] != want {
			t.Errorf("b[%d] = %g, want %g", i, b[i], want)
		}
		if c[i] != (Float4{float32(i)}) {
			t.Errorf("c[%d] = %v, want {%d, 0, 0, 0}", i, c[i], i)
		}
	}
}

func TestFprintMatrixShapes(t *testing.T) {
	a := make([]float32, ThreadsPerSubgroup)
	b := make([]float32, ThreadsPerSubgroup)
	c := make([]Float4, ThreadsPerSubgroup)
	InitTestMatrices(a, b, c)

	tests := []struct {
		name     string
		print    func(buf *bytes.Buffer)
		wantRows int
	}{
		{"A", func(buf *bytes.Buffer) { FprintAMatrix(buf, "A matrix", a) }, TileM},
		{"B", func(buf *bytes.Buffer) { FprintBMatrix(buf, "B matrix", b) }, TileK},
		{"C", func(buf *bytes.Buffer) { FprintCMatrix(buf, "C matrix", c) }, TileM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)

			out := buf.String()
			if !strings.HasPrefix(out, tt.name+" matrix:\n") {
				t.Errorf("missing label line in output: %q", out)
			}
			// Label line + one line per matrix row, then a blank line.
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if got := len(lines) - 1; got != tt.wantRows {
				t.Errorf("printed %d rows, want %d", got, tt.wantRows)
			}
		})
	}
}

// The C printer must place lane i's fragment at rows 4*(i/16)..+3 of
// column i%16, the same layout the kernel computes.
func TestFprintCMatrixLayout(t *testing.T) {
	c := make([]Float4, ThreadsPerSubgroup)
	// Unique value per (lane, p) so misplacement is detectable.
	for i := range c {
		for p := 0; p < FragmentLen; p++ {
			c[i][p] = float32(100*i + p)
		}
	}

	var buf bytes.Buffer
	FprintCMatrix(&buf, "C", c)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")[1:]

	C := Reference{}.ExpandC(c)
	for m := 0; m < TileM; m++ {
		fields := strings.Fields(lines[m])
		if len(fields) != TileN {
			t.Fatalf("row %d has %d columns, want %d", m, len(fields), TileN)
		}
		for n := 0; n < TileN; n++ {
			want := fmt.Sprintf("%g", C[m][n])
			if fields[n] != want {
				t.Errorf("row %d col %d: printed %q, want %q", m, n, fields[n], want)
			}
		}
	}
}
