package menu

import "image/color"

// View is a single item view handle managed by the Positioner.
//
// Implementations are expected to be pointer types: the positioner keys
// running animations by the handle value.
type View interface {
	// Measure returns the view's size when constrained to at most maxWidth x maxHeight.
	Measure(maxWidth, maxHeight int) (width, height int)
	Bounds() Rect
	SetBounds(r Rect)
	// SetRotation sets the roll rotation in degrees around the menu corner.
	SetRotation(degrees float64)
	Rotation() float64
	// Bind attaches item data to the view.
	Bind(item Item, tint color.Color)
}

// ViewPool hands out views for logical positions and takes them back.
type ViewPool interface {
	// Acquire returns a bound view for the logical position, reusing a recycled one when possible.
	Acquire(position int) View
	Recycle(v View)
}

// Pool is a ViewPool that keeps recycled views for reuse and binds them
// through an Adapter before handing them out.
type Pool struct {
	create  func() View
	adapter *Adapter
	free    []View

	created  int
	acquired int
	recycled int
}

// NewPool creates a pool that builds fresh views with create.
func NewPool(adapter *Adapter, create func() View) *Pool {
	return &Pool{
		create:  create,
		adapter: adapter,
	}
}

func (p *Pool) Acquire(position int) View {
	var v View
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		v = p.create()
		p.created++
	}
	p.acquired++
	v.SetRotation(0)
	p.adapter.Bind(v, position)
	return v
}

func (p *Pool) Recycle(v View) {
	if v == nil {
		return
	}
	p.recycled++
	p.free = append(p.free, v)
}

// Stats reports how many views were created, handed out and returned.
func (p *Pool) Stats() (created, acquired, recycled int) {
	return p.created, p.acquired, p.recycled
}

// Free returns the number of views waiting for reuse.
func (p *Pool) Free() int {
	return len(p.free)
}
