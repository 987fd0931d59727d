package cell

// MapCell republishes convert(upstream) on every upstream change. Equal
// transformed values are elided by the inequality test of the embedded
// output, so a coarse convert also deduplicates.
type MapCell[T, O comparable] struct {
	out      Source[O]
	src      Observable[T]
	tok      Token
	convert  func(T) O
	disposed bool
}

// Map derives a transformed cell from src. The cell is seeded eagerly with
// convert applied to src's current value, so it never holds an
// uninitialized value. A panic raised by convert escapes into the
// triggering SetValue call.
func Map[T, O comparable](src Observable[T], convert func(T) O) *MapCell[T, O] {
	c := &MapCell[T, O]{src: src, convert: convert}
	c.out.v = convert(src.Value())
	c.tok = src.AddListener(c.recompute)
	return c
}

func (c *MapCell[T, O]) recompute() {
	c.out.SetValue(c.convert(c.src.Value()))
}

func (c *MapCell[T, O]) Value() O { return c.out.Value() }

func (c *MapCell[T, O]) AddListener(fn func()) Token { return c.out.AddListener(fn) }

func (c *MapCell[T, O]) RemoveListener(tok Token) { c.out.RemoveListener(tok) }

func (c *MapCell[T, O]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.src.RemoveListener(c.tok)
	disposeUpstream(c.src)
}
