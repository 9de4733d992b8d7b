package lexer

// Identifier is a handle to an interned identifier spelling, unique per
// distinct spelling within one buffer.
type Identifier struct {
	index int32
}

// Index returns the dense handle value, stable in insertion order.
func (id Identifier) Index() int {
	return int(id.index)
}

// Interner deduplicates identifier spellings into dense handles.
//
// Many identifiers repeat throughout a source file, so interning avoids both
// repeated allocations and repeated string storage. The mapping is
// bidirectional: spellings resolve to handles and handles back to spellings.
// Each buffer owns its own interner; handles are never shared across buffers.
type Interner struct {
	handles   map[string]Identifier
	spellings []string
}

// NewInterner creates an interner with the given initial capacity.
func NewInterner(capacity int) *Interner {
	return &Interner{
		handles: make(map[string]Identifier, capacity),
	}
}

// Intern returns the handle for the given spelling, adding it on first use.
// The byte slice is copied; callers may reuse it.
func (i *Interner) Intern(spelling []byte) Identifier {
	// The temporary string for the map lookup is optimized away by the
	// compiler on the hit path.
	if id, ok := i.handles[string(spelling)]; ok {
		return id
	}
	s := string(spelling)
	id := Identifier{index: int32(len(i.spellings))}
	i.handles[s] = id
	i.spellings = append(i.spellings, s)
	return id
}

// Text returns the spelling for a handle.
func (i *Interner) Text(id Identifier) string {
	return i.spellings[id.index]
}

// Len returns the number of distinct spellings interned.
func (i *Interner) Len() int {
	return len(i.spellings)
}
