package layout

import (
	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

// axis selects the main direction of a stack. The horizontal stack is the
// reference algorithm; the vertical stack runs the same code with X/Y,
// W/H and left/top swapped.
type axis bool

const (
	horizontal axis = true
	vertical   axis = false
)

func (a axis) pos(v *view.View) *int32 {
	if a == horizontal {
		return &v.X
	}
	return &v.Y
}

func (a axis) size(v *view.View) *int32 {
	if a == horizontal {
		return &v.W
	}
	return &v.H
}

func (a axis) max(v *view.View) *int32 {
	if a == horizontal {
		return &v.MaxW
	}
	return &v.MaxH
}

func (a axis) cross() axis { return !a }

// gaps returns leading and trailing pixels of g along the axis.
func (a axis) gaps(g graphics.Gaps, em graphics.Point) (lead, trail int32) {
	l, t, r, b := g.Pixels(em)
	if a == horizontal {
		return l, r
	}
	return t, b
}

// alignment maps a child's Align bits to leading (-1), trailing (+1) or
// centered (0) placement along the axis. Contradictory bits center.
func (a axis) alignment(al graphics.Align) int {
	lead, trail := graphics.AlignLeft, graphics.AlignRight
	if a == vertical {
		lead, trail = graphics.AlignTop, graphics.AlignBottom
	}
	switch {
	case al&lead != 0 && al&trail == 0:
		return -1
	case al&trail != 0 && al&lead == 0:
		return 1
	default:
		return 0
	}
}

func (a axis) name() string {
	if a == horizontal {
		return "HStack"
	}
	return "VStack"
}

// HStackMeasure sizes a horizontal stack from its measured children: the
// width is the sum of padded child widths plus insets, the height the
// tallest padded child plus insets. MaxW becomes the sum of the children's
// maximums, Infinite when any child is greedy or a spacer, and 0 when
// nothing can grow.
func HStackMeasure(s *view.View) {
	errors.Swear(isHStack(s), "layout.HStackMeasure", "kind %s", s.Kind)
	measureStack(s, horizontal, "layout.HStackMeasure")
}

// VStackMeasure is HStackMeasure with the axes swapped.
func VStackMeasure(s *view.View) {
	errors.Swear(s.Kind == view.KindVStack, "layout.VStackMeasure", "kind %s", s.Kind)
	measureStack(s, vertical, "layout.VStackMeasure")
}

// HStackLayout positions the children of a horizontal stack left to right
// and hands leftover width first to flexible children in proportion to
// their maximums, then evenly to spacers.
func HStackLayout(s *view.View) {
	errors.Swear(isHStack(s), "layout.HStackLayout", "kind %s", s.Kind)
	layoutStack(s, horizontal, "layout.HStackLayout")
}

// VStackLayout is HStackLayout with the axes swapped: rows top to bottom.
func VStackLayout(s *view.View) {
	errors.Swear(s.Kind == view.KindVStack, "layout.VStackLayout", "kind %s", s.Kind)
	layoutStack(s, vertical, "layout.VStackLayout")
}

// isHStack accepts the caption bar, which is a horizontal stack too.
func isHStack(s *view.View) bool {
	return s.Kind == view.KindHStack || s.Kind == view.KindCaption
}

func measureStack(s *view.View, a axis, op string) {
	c := a.cross()
	lead, trail := a.gaps(s.Insets, s.Em)
	cLead, cTrail := c.gaps(s.Insets, s.Em)
	total, maxSum, extent := lead, lead, int32(0)
	for _, ch := range s.Children {
		if ch.Hidden {
			continue
		}
		size, limit := *a.size(ch), *a.max(ch)
		errors.Swear(limit == 0 || limit >= size, op,
			"%s: max %d smaller than size %d", ch.Name(), limit, size)
		pl, pt := a.gaps(ch.Padding, ch.Em)
		if ch.Kind == view.KindSpacer {
			*a.size(ch) = 0
			maxSum = view.Infinite
			total += pl + pt
			continue
		}
		cpl, cpt := c.gaps(ch.Padding, ch.Em)
		extent = max(extent, cpl+*c.size(ch)+cpt)
		padded := pl + size + pt
		switch {
		case limit == view.Infinite:
			maxSum = view.Infinite
		case maxSum == view.Infinite:
		case limit != 0:
			maxSum = addCapped(maxSum, pl+limit+pt)
		default:
			maxSum = addCapped(maxSum, padded)
		}
		total += padded
	}
	total += trail
	if maxSum != view.Infinite {
		maxSum = addCapped(maxSum, trail)
	}
	if maxSum == total {
		maxSum = 0
	}
	*a.max(s) = maxSum
	*a.size(s) = total
	*c.size(s) = cLead + extent + cTrail
	debugf(s, "%s measured %s: %s=%d max=%d", a.name(), s.Name(), a.name(), total, maxSum)
}

// addCapped adds without overflowing past Infinite.
func addCapped(a, b int32) int32 {
	if int64(a)+int64(b) >= int64(view.Infinite) {
		return view.Infinite - 1
	}
	return a + b
}

func layoutStack(s *view.View, a axis, op string) {
	c := a.cross()
	iLead, iTrail := a.gaps(s.Insets, s.Em)
	cLead, cTrail := c.gaps(s.Insets, s.Em)
	lf := *a.pos(s) + iLead
	rt := *a.pos(s) + *a.size(s) - iTrail
	errors.Swear(lf <= rt, op, "%s: insets %d+%d wider than %d",
		s.Name(), iLead, iTrail, *a.size(s))
	top := *c.pos(s) + cLead
	bot := *c.pos(s) + *c.size(s) - cTrail
	errors.Swear(top <= bot, op, "%s: cross insets %d+%d wider than %d",
		s.Name(), cLead, cTrail, *c.size(s))

	// Phase 1: natural sizes, cross-axis placement.
	var (
		spacers  int
		flexible int
		maxSum   int64
	)
	x := lf
	for _, ch := range s.Children {
		if ch.Hidden {
			continue
		}
		pl, pt := a.gaps(ch.Padding, ch.Em)
		placeCross(ch, c, top, bot)
		if ch.Kind == view.KindSpacer {
			spacers++
		} else if limit := *a.max(ch); limit > 0 {
			errors.Swear(limit >= *a.size(ch), op,
				"%s: max %d smaller than size %d", ch.Name(), limit, *a.size(ch))
			maxSum += int64(shareOf(s, ch, a))
			flexible++
		}
		*a.pos(ch) = x + pl
		x = *a.pos(ch) + *a.size(ch) + pt
	}
	debugf(s, "%s %s phase 1: x=%d right=%d flexible=%d spacers=%d",
		a.name(), s.Name(), x, rt, flexible, spacers)

	// Phase 2: leftover to flexible children in proportion to their maximums.
	if x < rt && flexible > 0 && maxSum > 0 {
		diff := rt - x
		var allocated int32
		k := 0
		for _, ch := range s.Children {
			if ch.Hidden || ch.Kind == view.KindSpacer || *a.max(ch) <= 0 {
				continue
			}
			m := shareOf(s, ch, a)
			share := int32(int64(diff) * int64(m) / maxSum)
			if k == flexible-1 {
				share = diff - allocated
			}
			allocated += share
			k++
			*a.size(ch) = min(m, *a.size(ch)+share)
			debugf(s, "%s %s: +%d -> %d", a.name(), ch.Name(), share, *a.size(ch))
		}
		x = reflow(s, a, lf)
	}

	// Phase 3: what flexible children did not take goes to spacers.
	if x < rt && spacers > 0 {
		diff := rt - x
		partial := diff / int32(spacers)
		var sum int32
		left := spacers
		for _, ch := range s.Children {
			if ch.Hidden || ch.Kind != view.KindSpacer {
				continue
			}
			if left == 1 {
				*a.size(ch) = *a.size(ch) + diff - sum
			} else {
				*a.size(ch) = *a.size(ch) + partial
			}
			sum += partial
			left--
		}
		x = reflow(s, a, lf)
	}
	debugf(s, "%s laid out %s: %s", a.name(), s.Name(), s.Rect())
}

// shareOf is the weight of a flexible child: its maximum, or the stack's
// own extent for a greedy child.
func shareOf(s, ch *view.View, a axis) int32 {
	if m := *a.max(ch); m != view.Infinite {
		return m
	}
	return *a.size(s)
}

// reflow recomputes main-axis positions left to right and returns the end
// of the last padded child.
func reflow(s *view.View, a axis, lf int32) int32 {
	x := lf
	for _, ch := range s.Children {
		if ch.Hidden {
			continue
		}
		pl, pt := a.gaps(ch.Padding, ch.Em)
		*a.pos(ch) = x + pl
		x = *a.pos(ch) + *a.size(ch) + pt
	}
	return x
}

// placeCross positions ch across the stack between top and bot. Children
// that may grow across (a non-zero maximum on the cross axis) stretch up
// to the available extent; spacers fill it.
func placeCross(ch *view.View, c axis, top, bot int32) {
	pl, pt := c.gaps(ch.Padding, ch.Em)
	avail := max(0, bot-top-pl-pt)
	if ch.Kind == view.KindSpacer {
		*c.pos(ch) = top + pl
		*c.size(ch) = avail
		return
	}
	if m := *c.max(ch); m != 0 && *c.size(ch) < avail {
		*c.size(ch) = min(m, avail)
	}
	switch c.alignment(ch.Align) {
	case -1:
		*c.pos(ch) = top + pl
	case 1:
		*c.pos(ch) = bot - *c.size(ch) - pt
	default:
		// Centered on the padded size within the insets rather than the
		// whole stack, so a child that fits never overlaps an inset.
		*c.pos(ch) = top + pl + (bot-top-(pl+*c.size(ch)+pt))/2
	}
}
