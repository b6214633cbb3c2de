package surface

// Rect is a rectangle in buffer cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Inset shrinks the rectangle by n cells on every side. Degenerate results
// collapse to an empty rectangle.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Constraint sizes one slot of a layout split.
type Constraint struct {
	fixed  int
	weight int
}

// Fixed requests exactly n cells.
func Fixed(n int) Constraint { return Constraint{fixed: n} }

// Fill requests a share of the remaining space proportional to weight.
func Fill(weight int) Constraint { return Constraint{weight: weight} }

// SplitV divides the rectangle top to bottom. Fixed constraints are satisfied
// first (clipped to the available height); leftover space is distributed over
// Fill constraints by weight, with the first fill absorbing rounding slack.
func SplitV(r Rect, constraints ...Constraint) []Rect {
	sizes := splitSizes(r.H, constraints)
	out := make([]Rect, len(constraints))
	y := r.Y
	for i, h := range sizes {
		out[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h
	}
	return out
}

// SplitH divides the rectangle left to right with the same rules as SplitV.
func SplitH(r Rect, constraints ...Constraint) []Rect {
	sizes := splitSizes(r.W, constraints)
	out := make([]Rect, len(constraints))
	x := r.X
	for i, w := range sizes {
		out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return out
}

func splitSizes(total int, constraints []Constraint) []int {
	sizes := make([]int, len(constraints))
	remaining := total
	weightSum := 0
	for i, c := range constraints {
		if c.weight > 0 {
			weightSum += c.weight
			continue
		}
		size := c.fixed
		if size > remaining {
			size = remaining
		}
		sizes[i] = size
		remaining -= size
	}
	if weightSum == 0 {
		return sizes
	}
	fillSpace := remaining
	first := -1
	for i, c := range constraints {
		if c.weight == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		sizes[i] = fillSpace * c.weight / weightSum
		remaining -= sizes[i]
	}
	if first >= 0 {
		sizes[first] += remaining
	}
	return sizes
}
