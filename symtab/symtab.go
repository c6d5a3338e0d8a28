// Package symtab is the flat local-variable symbol table the parser
// consults while binding identifiers to stack-frame offsets.
package symtab

// LVar is a single local variable binding: its name and its byte
// offset from the base pointer.
type LVar struct {
	Name   string
	Len    int
	Offset int
}

// Table is an ordered, append-only list of local variables. Lookup is
// linear by exact name match, matching the source this was distilled
// from (LVars::find in the reference implementation) rather than a
// map, since the frame only ever holds a handful of entries.
type Table struct {
	vars []LVar
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{}
}

// Find returns the existing binding for name, if any.
func (t *Table) Find(name string) (LVar, bool) {
	for _, v := range t.vars {
		if v.Name == name {
			return v, true
		}
	}
	return LVar{}, false
}

// Offset returns the offset for name, inserting a fresh binding at
// the next free 8-byte slot (8 * (len+1)) on first use.
func (t *Table) Offset(name string) int {
	if v, ok := t.Find(name); ok {
		return v.Offset
	}
	v := LVar{
		Name:   name,
		Len:    len(name),
		Offset: (len(t.vars) + 1) * 8,
	}
	t.vars = append(t.vars, v)
	return v.Offset
}

// Len returns the number of distinct locals bound so far.
func (t *Table) Len() int {
	return len(t.vars)
}

// FrameSize returns the number of bytes the prologue must reserve to
// hold every bound local, rounded up to 16 bytes for ABI alignment.
func (t *Table) FrameSize() int {
	size := len(t.vars) * 8
	if size%16 != 0 {
		size += 8
	}
	return size
}
