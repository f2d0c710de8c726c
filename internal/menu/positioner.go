package menu

import (
	"log/slog"
	"maps"
	"math"
	"slices"
)

const (
	// DefaultSpacing widens each item's angular footprint to leave a margin between items.
	DefaultSpacing = 1.3
	// DefaultRadiusFraction is the share of an item's size kept inside the viewport edge.
	DefaultRadiusFraction = 0.8

	maxViewportSize = 10000
)

type availability int8

const (
	availabilityUnknown availability = iota
	availabilityYes
	availabilityNo
)

// ItemCounter reports the size of the logical position space.
type ItemCounter interface {
	ItemCount() int
}

// Geometry holds the constants derived from the first measured item.
type Geometry struct {
	Radius       int
	AnglePerItem float64
	MarginAngle  float64
	HalfMargin   int
}

// AttachedView is a realized position and its view.
type AttachedView struct {
	Position int
	View     View
}

// Positioner lays views out on an arc around a corner of its viewport,
// recycles the ones that leave it and scrolls them by angle.
type Positioner struct {
	corner        Corner
	width, height int

	pool     ViewPool
	counter  ItemCounter
	animator *Animator
	logger   *slog.Logger

	attached []AttachedView // ascending by position
	cache    map[int]View
	angles   map[int]float64
	tweens   map[View][]*Tween
	rollDone func()

	radius       int
	anglePerItem float64
	marginAngle  float64
	halfMargin   int

	spacing        float64
	radiusFraction float64

	scrollTo      int
	angleOffset   float64
	scrollEnabled bool
	scrollable    availability

	busy     bool
	deferred []func()
}

// PositionerOption customizes a Positioner.
type PositionerOption func(*Positioner)

// WithSpacing sets the item spacing scale factor.
func WithSpacing(spacing float64) PositionerOption {
	return func(p *Positioner) {
		if spacing >= 1 {
			p.spacing = spacing
		}
	}
}

// WithRadiusFraction sets the share of the item size subtracted from the viewport when deriving the radius.
func WithRadiusFraction(f float64) PositionerOption {
	return func(p *Positioner) {
		if f >= 0 {
			p.radiusFraction = f
		}
	}
}

// WithLogger sets the logger used for layout diagnostics.
func WithLogger(l *slog.Logger) PositionerOption {
	return func(p *Positioner) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPositioner creates a positioner for the given corner.
func NewPositioner(corner Corner, pool ViewPool, counter ItemCounter, animator *Animator, opts ...PositionerOption) *Positioner {
	p := &Positioner{
		corner:         corner,
		pool:           pool,
		counter:        counter,
		animator:       animator,
		logger:         slog.Default(),
		cache:          make(map[int]View),
		angles:         make(map[int]float64),
		tweens:         make(map[View][]*Tween),
		anglePerItem:   -1,
		radius:         10,
		spacing:        DefaultSpacing,
		radiusFraction: DefaultRadiusFraction,
		scrollTo:       NoPosition,
		angleOffset:    UndefinedAngle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Corner returns the active corner.
func (p *Positioner) Corner() Corner { return p.corner }

// SetCorner switches corners and relayouts from scratch.
func (p *Positioner) SetCorner(c Corner) error {
	if !c.valid() {
		return &ArgumentError{Param: "corner", Value: c}
	}
	p.guard(func() {
		p.corner = c
		p.relayout()
	})
	return nil
}

// Size returns the viewport size.
func (p *Positioner) Size() (int, int) { return p.width, p.height }

// Geometry returns the current derived geometry.
func (p *Positioner) Geometry() Geometry {
	return Geometry{
		Radius:       p.radius,
		AnglePerItem: p.anglePerItem,
		MarginAngle:  p.marginAngle,
		HalfMargin:   p.halfMargin,
	}
}

// SetScrollEnabled gates ScrollBy.
func (p *Positioner) SetScrollEnabled(enabled bool) { p.scrollEnabled = enabled }

// ScrollEnabled reports whether scrolling is enabled.
func (p *Positioner) ScrollEnabled() bool { return p.scrollEnabled }

// HasItemsToScroll is false once a fill proved every item fits in the viewport.
func (p *Positioner) HasItemsToScroll() bool {
	return p.scrollable != availabilityNo
}

// CanScroll reports whether a scroll request would be honored.
func (p *Positioner) CanScroll() bool {
	return p.scrollEnabled && p.HasItemsToScroll()
}

// SetAngleOffset sets the first item's angular offset in degrees for the next layout.
// UndefinedAngle centers the first item on its own footprint.
func (p *Positioner) SetAngleOffset(deg float64) { p.angleOffset = deg }

// ScrollToPosition makes position the first item and relayouts. Outside
// endless mode the position is clamped to the item range.
func (p *Positioner) ScrollToPosition(position int) {
	p.guard(func() {
		if n := p.counter.ItemCount(); n != EndlessItemCount {
			if n <= 0 {
				position = NoPosition
			} else {
				position = min(max(position, 0), n-1)
			}
		}
		p.scrollTo = position
		p.relayout()
	})
}

// CurrentPosition returns the first attached position, or NoPosition.
func (p *Positioner) CurrentPosition() int {
	if len(p.attached) == 0 {
		return NoPosition
	}
	return p.attached[0].Position
}

// CurrentItemsAngleOffset returns the first item's offset from 90 degrees.
func (p *Positioner) CurrentItemsAngleOffset() float64 {
	if len(p.attached) == 0 {
		return 0
	}
	return 90 - p.angles[p.attached[0].Position]
}

// Attached returns a snapshot of the attached views in position order.
func (p *Positioner) Attached() []AttachedView {
	return slices.Clone(p.attached)
}

// Angle returns the stored angle of a realized position.
func (p *Positioner) Angle(position int) (float64, bool) {
	a, ok := p.angles[position]
	return a, ok
}

// ViewAt returns the position whose view disc contains (x, y).
func (p *Positioner) ViewAt(x, y int) (int, bool) {
	for _, av := range p.attached {
		b := av.View.Bounds()
		cx, cy := b.Center()
		r := float64(min(b.Width(), b.Height())) / 2
		dx, dy := float64(x)-cx, float64(y)-cy
		if dx*dx+dy*dy <= r*r {
			return av.Position, true
		}
	}
	return NoPosition, false
}

// Layout sizes the viewport and lays every view out again. A degenerate
// viewport skips the pass.
func (p *Positioner) Layout(width, height int) {
	p.guard(func() {
		p.width, p.height = width, height
		p.relayout()
	})
}

func (p *Positioner) relayout() {
	if p.scrollTo == NoPosition && len(p.attached) > 0 {
		p.scrollTo = p.attached[0].Position
		p.angleOffset = p.CurrentItemsAngleOffset()
	}
	p.anglePerItem = -1
	p.scrollable = availabilityUnknown
	clear(p.angles)
	for _, av := range p.attached {
		p.recycle(av.View)
	}
	p.attached = p.attached[:0]
	p.abandonRoll()

	if p.width <= 0 || p.height <= 0 || p.width >= maxViewportSize || p.height >= maxViewportSize {
		p.logger.Debug("Skipping menu layout for degenerate viewport", "width", p.width, "height", p.height)
		return
	}
	p.fill()
}

// Fill realizes the positions visible in the viewport and recycles the rest.
func (p *Positioner) Fill() {
	p.guard(p.fill)
}

func (p *Positioner) fill() {
	anchor, hasAnchor := p.anchor()

	clear(p.cache)
	for _, av := range p.attached {
		p.cache[av.Position] = av.View
	}
	p.attached = p.attached[:0]

	p.fillDown(anchor, hasAnchor)
	if !hasAnchor && len(p.attached) > 0 {
		anchor, hasAnchor = p.attached[0], true
	}
	if hasAnchor {
		p.fillUp(anchor)
	}

	for _, pos := range slices.Sorted(maps.Keys(p.cache)) {
		p.recycle(p.cache[pos])
	}
	clear(p.cache)
	p.abandonRoll()
}

// anchor returns the first attached view not entirely past the near edge.
func (p *Positioner) anchor() (AttachedView, bool) {
	if len(p.attached) == 0 {
		return AttachedView{}, false
	}
	for _, av := range p.attached {
		b := av.View.Bounds()
		if p.corner.IsLeftSide() && b.Right >= 0 {
			return av, true
		}
		if p.corner.IsRightSide() && b.Left <= p.width {
			return av, true
		}
	}
	return p.attached[len(p.attached)-1], true
}

func (p *Positioner) fillUp(anchor AttachedView) {
	pos := anchor.Position - 1
	b := anchor.View.Bounds()
	canFill := p.canFillUp(b)
	angle := p.angles[anchor.Position] + p.anglePerItem

	var placed []AttachedView
	for canFill && pos >= 0 {
		v, cached := p.cache[pos]
		if cached {
			delete(p.cache, pos)
			b = v.Bounds()
		} else {
			p.angles[pos] = angle
			v = p.pool.Acquire(pos)
			w, h := v.Measure(p.width, p.height)
			b = p.project(angle, w, h)
			v.SetBounds(b)
		}
		placed = append(placed, AttachedView{Position: pos, View: v})
		pos--
		canFill = p.canFillUp(b)
		angle += p.anglePerItem
	}
	if len(placed) == 0 {
		return
	}
	slices.Reverse(placed)
	p.attached = append(placed, p.attached...)
}

func (p *Positioner) canFillUp(b Rect) bool {
	if p.corner.IsLeftSide() {
		return b.Left > 0
	}
	return b.Right < p.width
}

func (p *Positioner) fillDown(anchor AttachedView, hasAnchor bool) {
	pos := 0
	if hasAnchor {
		pos = anchor.Position
	} else if p.scrollTo != NoPosition {
		pos = p.scrollTo
	}

	angle := 90.0
	if hasAnchor {
		if a, ok := p.angles[pos]; ok {
			angle = a
		}
	}

	itemCount := p.counter.ItemCount()
	canFill := true
	for canFill && pos < itemCount {
		v, cached := p.cache[pos]
		var b Rect
		if cached {
			delete(p.cache, pos)
			b = v.Bounds()
		} else {
			v = p.pool.Acquire(pos)
			w, h := v.Measure(p.width, p.height)
			if p.anglePerItem < 0 {
				if !p.initGeometry(h) {
					p.pool.Recycle(v)
					return
				}
				if p.angleOffset < UndefinedAngle+1 {
					angle -= p.anglePerItem / 2
				} else {
					angle -= p.angleOffset
				}
			}
			p.angles[pos] = angle
			b = p.project(angle, w, h)
			v.SetBounds(b)
		}
		p.attached = append(p.attached, AttachedView{Position: pos, View: v})

		if p.corner.IsUpSide() {
			canFill = b.Top > 0
		} else {
			canFill = b.Bottom < p.height
		}
		pos++
		if pos == itemCount && p.scrollable == availabilityUnknown {
			if canFill {
				p.scrollable = availabilityNo
			} else {
				p.scrollable = availabilityYes
			}
		}
		angle -= p.anglePerItem
	}
}

// initGeometry derives radius and angular footprint from the first measured item.
func (p *Positioner) initGeometry(itemHeight int) bool {
	if itemHeight <= 0 {
		p.logger.Warn("Menu item measured with no height", "height", itemHeight)
		return false
	}
	radius := min(p.width, p.height) - int(float64(itemHeight)*p.radiusFraction)
	if radius <= 0 {
		p.logger.Warn("Menu viewport too small for its items", "width", p.width, "height", p.height, "item", itemHeight)
		return false
	}
	p.radius = radius

	circle := 2 * math.Pi * float64(radius)
	perItem := 360 * float64(itemHeight) / circle
	withMargins := perItem * p.spacing
	p.marginAngle = (withMargins - perItem) / 2
	p.halfMargin = int((float64(itemHeight)*p.spacing - float64(itemHeight)) / 2)
	p.anglePerItem = withMargins

	p.logger.Debug("Menu geometry initialized",
		"radius", p.radius, "angle_per_item", p.anglePerItem, "margin_angle", p.marginAngle)
	return true
}

// project places a w x h view centered on the arc at angle degrees.
func (p *Positioner) project(angle float64, w, h int) Rect {
	rad := angle * math.Pi / 180
	x := int(float64(p.radius) * math.Cos(rad))
	y := int(float64(p.radius) * math.Sin(rad))
	if p.corner.IsRightSide() {
		x = p.width - x
	}
	if p.corner.IsBottomSide() {
		y = p.height - y
	}
	return Rect{
		Left:   x - w/2,
		Top:    y - h/2,
		Right:  x + w/2,
		Bottom: y + h/2,
	}
}

// center returns the unrounded mirrored center for angle degrees.
func (p *Positioner) center(angle float64) (float64, float64) {
	rad := angle * math.Pi / 180
	x := float64(p.radius) * math.Cos(rad)
	y := float64(p.radius) * math.Sin(rad)
	if p.corner.IsRightSide() {
		x = float64(p.width) - x
	}
	if p.corner.IsBottomSide() {
		y = float64(p.height) - y
	}
	return x, y
}

// ScrollHorizontallyBy scrolls by a horizontal drag distance.
func (p *Positioner) ScrollHorizontallyBy(dx int) int {
	p.scrollTo = NoPosition
	if p.corner == CornerRightTop || p.corner == CornerLeftBottom {
		return p.ScrollBy(dx)
	}
	return p.ScrollBy(-dx)
}

// ScrollVerticallyBy scrolls by a vertical drag distance.
func (p *Positioner) ScrollVerticallyBy(dy int) int {
	p.scrollTo = NoPosition
	return p.ScrollBy(dy)
}

// ScrollBy rotates every item by the angle matching delta pixels along the
// arc, refills and returns the pixels actually consumed. Basic mode stops
// at the first and last items.
func (p *Positioner) ScrollBy(delta int) int {
	if !p.scrollEnabled {
		return 0
	}
	consumed := 0
	p.guard(func() {
		p.scrollTo = NoPosition
		consumed = p.scrollBy(delta)
	})
	return consumed
}

func (p *Positioner) scrollBy(d int) int {
	if len(p.attached) == 0 || p.radius <= 0 {
		return 0
	}
	p.scrollable = availabilityYes

	var delta int
	if p.corner.IsBottomSide() {
		delta = p.checkEndsReached(-d)
	} else {
		delta = p.checkEndsReached(d)
	}

	angle := 360.0 * float64(delta) / (2 * math.Pi * float64(p.radius))
	for _, av := range p.attached {
		a := p.angles[av.Position] + angle
		p.angles[av.Position] = a

		b := av.View.Bounds()
		cx, cy := b.Center()
		nx, ny := p.center(a)
		av.View.SetBounds(b.Offset(int(math.Round(nx-cx)), int(math.Round(ny-cy))))
	}
	p.fill()

	if p.corner.IsBottomSide() {
		return delta
	}
	return -delta
}

// checkEndsReached clamps d so the first and last items stop half a margin
// inside the viewport, and returns the negated scroll to apply.
func (p *Positioner) checkEndsReached(d int) int {
	if len(p.attached) == 0 {
		return 0
	}
	itemCount := p.counter.ItemCount()
	first := p.attached[0]
	last := p.attached[len(p.attached)-1]

	delta := 0
	switch {
	case d < 0:
		if last.Position < itemCount-1 {
			delta = d
			break
		}
		b := last.View.Bounds()
		if p.corner.IsBottomSide() {
			delta = max(p.height-p.halfMargin-b.Bottom, d)
		} else {
			delta = max(b.Top-p.halfMargin, d)
		}
	case d > 0:
		if first.Position > 0 {
			delta = d
			break
		}
		b := first.View.Bounds()
		if p.corner.IsLeftSide() {
			delta = min(-b.Left+p.halfMargin, d)
		} else {
			delta = min(b.Right+p.halfMargin-p.width, d)
		}
	}
	return -delta
}

// guard runs fn unless a fill or scroll is already running, in which case
// fn is queued until the running call returns.
func (p *Positioner) guard(fn func()) {
	if p.busy {
		p.deferred = append(p.deferred, fn)
		return
	}
	p.busy = true
	fn()
	for len(p.deferred) > 0 {
		next := p.deferred[0]
		p.deferred = p.deferred[1:]
		next()
	}
	p.busy = false
}
