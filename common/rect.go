package common

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r *Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

func (r *Rect) Right() float64 {
	return r.X + r.Width
}

func (r *Rect) Bottom() float64 {
	return r.Y + r.Height
}
