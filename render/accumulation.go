package render

import "github.com/gazed/rayna/colour"

// Cell is a per-pixel running mean (spec.md §3 "AccumulationCell"): sum and
// weight accumulate across frames; Mean is sum/weight once weight>0, and the
// zero value (black, weight 0) is a valid "no samples yet" cell. The sum is
// kept in float64 so that thousands of float32 samples do not drift the mean.
type Cell struct {
	sumR, sumG, sumB float64
	weight           float64
}

// InsertSampleWeighted folds value into the cell's running mean with the
// given weight (§4.7 "AccumulationCell::insert_sample_weighted"), returning
// the cell's mean after the insert.
func (c *Cell) InsertSampleWeighted(value colour.Colour, weight float64) colour.Colour {
	c.sumR += float64(value.R) * weight
	c.sumG += float64(value.G) * weight
	c.sumB += float64(value.B) * weight
	c.weight += weight
	return c.Mean()
}

// Mean returns the cell's current running mean, or black if it has not yet
// received any weight.
func (c *Cell) Mean() colour.Colour {
	if c.weight <= 0 {
		return colour.Black
	}
	return colour.New(c.sumR/c.weight, c.sumG/c.weight, c.sumB/c.weight)
}

// Buffer is the renderer's per-pixel accumulation state (spec.md §3
// "AccumulationBuffer"): a Cell image plus a frame counter, reset whenever
// the renderer's dimensions change or an explicit invalidation occurs
// (§4.7 "Progressive accumulation").
type Buffer struct {
	cells  *colour.Image[Cell]
	width  int
	height int
	frames int
}

// NewBuffer allocates a blank accumulation buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{cells: colour.NewImage[Cell](width, height), width: width, height: height}
}

// Dims reports the buffer's pixel dimensions.
func (b *Buffer) Dims() (width, height int) { return b.width, b.height }

// Frames returns how many frames have been accumulated since the last reset.
func (b *Buffer) Frames() int { return b.frames }

// EnsureDims resets the buffer (discarding all accumulated cells and the
// frame counter) if its dimensions don't match width/height, matching §7
// "Accumulation mismatch": never an error, just a silent reallocation.
func (b *Buffer) EnsureDims(width, height int) {
	if b.width == width && b.height == height {
		return
	}
	b.cells = colour.NewImage[Cell](width, height)
	b.width, b.height = width, height
	b.frames = 0
}

// Reset clears every cell and the frame counter without changing dimensions
// (§6 "explicit invalidation (clear_accumulation)").
func (b *Buffer) Reset() {
	b.cells = colour.NewImage[Cell](b.width, b.height)
	b.frames = 0
}

// BeginFrame increments the frame counter, returning the new count (the
// value §8 invariant 10 checks equals 1 for the first frame after a reset).
func (b *Buffer) BeginFrame() int {
	b.frames++
	return b.frames
}

// Cell returns a pointer to the accumulation cell at (x,y), for a row task
// to mutate directly without a Get/Set round trip.
func (b *Buffer) Cell(x, y int) *Cell { return b.cells.Ptr(x, y) }

// Image materialises the buffer's current per-pixel mean as a plain colour
// image, the value returned to the UI each frame.
func (b *Buffer) Image() *colour.Image[colour.Colour] {
	out := colour.NewImage[colour.Colour](b.width, b.height)
	b.cells.Each(func(x, y int, c *Cell) {
		out.Set(x, y, c.Mean())
	})
	return out
}
