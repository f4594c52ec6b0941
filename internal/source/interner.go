package source

// StringID is an interned string handle. Scope frames key variable names by
// StringID instead of raw strings.
type StringID uint32

const NoStringID StringID = 0

type Interner struct {
	byID  []string            // id -> string (byID[0] = "" for NoStringID)
	index map[string]StringID // string -> id
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s and returns its ID; known strings return their existing ID.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}

	// Own copy, so the interner does not pin the caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns the byte slice as a string.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) for an invalid id.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// Contains reports whether s has been interned without interning it.
func (in *Interner) Contains(s string) (StringID, bool) {
	id, ok := in.index[s]
	return id, ok
}

func (in *Interner) Len() int {
	return len(in.byID)
}
