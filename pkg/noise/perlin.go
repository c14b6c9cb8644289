// pkg/noise/perlin.go
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrInvalidShape is returned for non-positive grid or resolution sizes.
	ErrInvalidShape = errors.New("noise: shape and resolution must be positive")
	// ErrIndivisibleShape is returned when the resolution does not divide the shape.
	ErrIndivisibleShape = errors.New("noise: resolution must evenly divide shape")
)

// Shape is the size of the generated grid.
type Shape struct {
	Rows, Cols int
}

// Resolution is the number of gradient cells along each axis.
type Resolution struct {
	X, Y int
}

// Options tweak generation. The zero value produces plain Perlin noise.
type Options struct {
	// TileRows makes the noise wrap along the row axis.
	TileRows bool
	// TileCols makes the noise wrap along the column axis.
	TileCols bool
}

// Field is an immutable 2D grid of noise samples, row-major.
type Field struct {
	rows, cols int
	values     []float64
}

// Rows returns the number of rows.
func (f Field) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f Field) Cols() int { return f.cols }

// At returns the sample at (row, col). Panics when out of range, like a slice.
func (f Field) At(row, col int) float64 {
	return f.values[row*f.cols+col]
}

// Min returns the smallest sample.
func (f Field) Min() float64 {
	m := math.Inf(1)
	for _, v := range f.values {
		m = math.Min(m, v)
	}
	return m
}

// Max returns the largest sample.
func (f Field) Max() float64 {
	m := math.Inf(-1)
	for _, v := range f.values {
		m = math.Max(m, v)
	}
	return m
}

// Smootherstep is the fifth-order interpolant t³(t(6t−15)+10).
func Smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

type gradient struct {
	x, y float64
}

// Generate builds a Perlin noise field. The same shape, resolution and seed
// always produce the same field.
func Generate(shape Shape, res Resolution, seed int64) (Field, error) {
	return GenerateWithOptions(shape, res, seed, Options{})
}

// GenerateWithOptions is Generate with tiling control.
func GenerateWithOptions(shape Shape, res Resolution, seed int64, opts Options) (Field, error) {
	if shape.Rows <= 0 || shape.Cols <= 0 || res.X <= 0 || res.Y <= 0 {
		return Field{}, fmt.Errorf("%w: shape %dx%d, res %dx%d", ErrInvalidShape, shape.Rows, shape.Cols, res.X, res.Y)
	}
	if shape.Rows%res.X != 0 || shape.Cols%res.Y != 0 {
		return Field{}, fmt.Errorf("%w: shape %dx%d, res %dx%d", ErrIndivisibleShape, shape.Rows, shape.Cols, res.X, res.Y)
	}

	rng := rand.New(rand.NewSource(seed))
	lattice := make([][]gradient, res.X+1)
	for i := range lattice {
		lattice[i] = make([]gradient, res.Y+1)
		for j := range lattice[i] {
			angle := 2 * math.Pi * rng.Float64()
			lattice[i][j] = gradient{math.Cos(angle), math.Sin(angle)}
		}
	}
	if opts.TileRows {
		copy(lattice[res.X], lattice[0])
	}
	if opts.TileCols {
		for i := range lattice {
			lattice[i][res.Y] = lattice[i][0]
		}
	}

	dx := shape.Rows / res.X
	dy := shape.Cols / res.Y
	values := make([]float64, shape.Rows*shape.Cols)

	for i := 0; i < shape.Rows; i++ {
		ci := i / dx
		fx := float64(i%dx) / float64(dx)
		tx := Smootherstep(fx)
		for j := 0; j < shape.Cols; j++ {
			cj := j / dy
			fy := float64(j%dy) / float64(dy)
			ty := Smootherstep(fy)

			g00 := lattice[ci][cj]
			g10 := lattice[ci+1][cj]
			g01 := lattice[ci][cj+1]
			g11 := lattice[ci+1][cj+1]

			// Ramps: corner gradient dotted with the corner→sample offset.
			n00 := fx*g00.x + fy*g00.y
			n10 := (fx-1)*g10.x + fy*g10.y
			n01 := fx*g01.x + (fy-1)*g01.y
			n11 := (fx-1)*g11.x + (fy-1)*g11.y

			n0 := n00*(1-tx) + tx*n10
			n1 := n01*(1-tx) + tx*n11
			values[i*shape.Cols+j] = math.Sqrt2 * ((1-ty)*n0 + ty*n1)
		}
	}

	return Field{rows: shape.Rows, cols: shape.Cols, values: values}, nil
}

// FromValues wraps precomputed samples, e.g. for synthetic maps.
// values must hold rows*cols entries in row-major order.
func FromValues(rows, cols int, values []float64) (Field, error) {
	if rows <= 0 || cols <= 0 {
		return Field{}, fmt.Errorf("%w: shape %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(values) != rows*cols {
		return Field{}, fmt.Errorf("noise: got %d values for %dx%d grid", len(values), rows, cols)
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	return Field{rows: rows, cols: cols, values: cp}, nil
}
