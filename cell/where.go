package cell

// WhereCell republishes upstream values accepted by its selector. Rejected
// updates produce no downstream notification at all.
type WhereCell[T comparable] struct {
	out      Source[T]
	src      Observable[T]
	tok      Token
	selector func(T) bool
	disposed bool
}

// Where derives a filtered cell from src. The initial value is src's
// current value regardless of the selector; filtering applies to changes
// only. The selector is re-evaluated on every change, so it may be
// stateful or time-varying.
func Where[T comparable](src Observable[T], selector func(T) bool) *WhereCell[T] {
	c := &WhereCell[T]{src: src, selector: selector}
	c.out.v = src.Value()
	c.tok = src.AddListener(c.recompute)
	return c
}

func (c *WhereCell[T]) recompute() {
	next := c.src.Value()
	if !c.selector(next) {
		return
	}
	c.out.SetValue(next)
}

func (c *WhereCell[T]) Value() T { return c.out.Value() }

func (c *WhereCell[T]) AddListener(fn func()) Token { return c.out.AddListener(fn) }

func (c *WhereCell[T]) RemoveListener(tok Token) { c.out.RemoveListener(tok) }

func (c *WhereCell[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.src.RemoveListener(c.tok)
	disposeUpstream(c.src)
}
