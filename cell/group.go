package cell

import mapset "github.com/deckarep/golang-set/v2"

// DisposeGroup aggregates Disposers so a caller juggling several pipelines
// or subscriptions can tear all of them down with one call. Members are
// held in a set, so adding the same Disposer twice registers it once.
type DisposeGroup struct {
	set      mapset.Set[Disposer]
	disposed bool
}

func NewDisposeGroup() *DisposeGroup {
	return &DisposeGroup{set: mapset.NewSet[Disposer]()}
}

// Add registers d for disposal. Adding to an already-disposed group
// disposes d immediately.
func (g *DisposeGroup) Add(d Disposer) {
	if g.disposed {
		d.Dispose()
		return
	}
	g.set.Add(d)
}

// Dispose disposes every member and empties the group. Idempotent.
func (g *DisposeGroup) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, d := range g.set.ToSlice() {
		d.Dispose()
	}
	g.set.Clear()
}
