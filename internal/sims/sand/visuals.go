package sand

// Handle is an opaque reference to a renderable object owned by the host.
// The zero Handle means "no visual".
type Handle uint64

// NoHandle is the absent visual.
const NoHandle Handle = 0

// Visuals allocates and maintains the renderable objects that mirror grid
// occupants. Implementations live in the host; the simulation only stores
// the returned handles and reports changes.
type Visuals interface {
	Spawn(m Material, x, y int) Handle
	Despawn(h Handle)
	Reposition(h Handle, x, y int)
}

// NopVisuals hands out sequential handles and otherwise ignores calls. It
// backs headless runs where nothing is drawn.
type NopVisuals struct {
	next Handle
}

// Spawn returns a fresh non-zero handle.
func (v *NopVisuals) Spawn(Material, int, int) Handle {
	v.next++
	return v.next
}

// Despawn is a no-op.
func (v *NopVisuals) Despawn(Handle) {}

// Reposition is a no-op.
func (v *NopVisuals) Reposition(Handle, int, int) {}
