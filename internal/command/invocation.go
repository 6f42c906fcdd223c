package command

// InvocationKind tags how a command was triggered
type InvocationKind int

const (
	// KindDirect is a command invoked by name with explicit arguments
	KindDirect InvocationKind = iota
	// KindListSelection is a command invoked on an entity picked from a list
	KindListSelection
)

func (k InvocationKind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindListSelection:
		return "list-selection"
	default:
		return "unknown"
	}
}

// Invocation is the context a command was triggered from
type Invocation struct {
	Kind   InvocationKind
	Entity any
}

// Direct is an invocation that carries no implicit selection
func Direct() Invocation {
	return Invocation{Kind: KindDirect}
}

// FromListSelection is an invocation triggered on entity from a picker
func FromListSelection(entity any) Invocation {
	return Invocation{Kind: KindListSelection, Entity: entity}
}

// Selection returns the selected entity. ok is false for any invocation that
// is not a list selection, whatever its Entity holds.
func (i Invocation) Selection() (entity any, ok bool) {
	if i.Kind != KindListSelection || i.Entity == nil {
		return nil, false
	}
	return i.Entity, true
}
