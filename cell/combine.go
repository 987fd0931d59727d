package cell

// Combine2Cell recomputes from the latest value of two independently
// updating sources. Combine3 through Combine8 in combine_gen.go extend the
// same shape to more sources.
type Combine2Cell[T0, T1, O comparable] struct {
	out      Source[O]
	c0       Observable[T0]
	c1       Observable[T1]
	tok0     Token
	tok1     Token
	combine  func(T0, T1) O
	disposed bool
}

// Combine2 derives a cell from two sources. It is seeded with the combiner
// applied to both current values and recomputes on a change to either
// side, always reading the other side's current stored value rather than a
// cached snapshot. Two sources updated in the same synchronous step
// produce two publications, one per change.
func Combine2[T0, T1, O comparable](
	c0 Observable[T0],
	c1 Observable[T1],
	combine func(T0, T1) O,
) *Combine2Cell[T0, T1, O] {
	c := &Combine2Cell[T0, T1, O]{
		c0:      c0,
		c1:      c1,
		combine: combine,
	}
	c.out.v = combine(c0.Value(), c1.Value())
	c.tok0 = c0.AddListener(c.recompute)
	c.tok1 = c1.AddListener(c.recompute)
	return c
}

func (c *Combine2Cell[T0, T1, O]) recompute() {
	c.out.SetValue(c.combine(c.c0.Value(), c.c1.Value()))
}

func (c *Combine2Cell[T0, T1, O]) Value() O { return c.out.Value() }

func (c *Combine2Cell[T0, T1, O]) AddListener(fn func()) Token { return c.out.AddListener(fn) }

func (c *Combine2Cell[T0, T1, O]) RemoveListener(tok Token) { c.out.RemoveListener(tok) }

func (c *Combine2Cell[T0, T1, O]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.c0.RemoveListener(c.tok0)
	c.c1.RemoveListener(c.tok1)
	disposeUpstream(c.c0)
	disposeUpstream(c.c1)
}
