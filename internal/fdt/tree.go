package fdt

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// Header is the fixed-size record at the start of every blob. Fields absent
// for the blob's version (see doc.go for the version-gated schedule) are zero
// and carry no information.
type Header struct {
	TotalSize       uint32
	OffDTStruct     uint32
	OffDTStrings    uint32
	OffMemRsvmap    uint32
	Version         uint32
	LastCompVersion uint32

	// Version > 2
	BootCpuidPhys uint32

	// Version > 3
	SizeDTStrings uint32

	// Version > 17
	SizeDTStruct uint32
}

// Tree is the result of one parse: the header plus the single root node.
// It owns copies of all names and payloads and is never mutated after Parse.
type Tree struct {
	Header Header
	Root   *Node

	// Terminated reports whether a well-formed END tag followed the root
	// node. Parse does not require one; Verify flags its absence.
	Terminated bool
}

// Node is a named node with its properties and children in the order they
// appear in the structure block. Only the root has an empty name.
type Node struct {
	Name       []byte
	Properties []Property
	Children   []*Node
}

// Property is a named opaque payload. Names and values are raw byte
// sequences: they are usually ASCII but nothing in the format guarantees it,
// so any text interpretation is left to the caller.
type Property struct {
	Name  []byte
	Value []byte

	// NameOff is the offset into the strings block the name was resolved
	// from, retained for structural diagnostics.
	NameOff uint32
}

// NodeAt looks up a node by slash-separated path, e.g. "/cpus/cpu@0".
// "/" (or "") is the root. Returns nil if any segment is missing.
func (t *Tree) NodeAt(path string) *Node {
	n := t.Root
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		n = n.Child(seg)
		if n == nil {
			return nil
		}
	}
	return n
}

// Child returns the first child with the given name, or nil. A name without
// a unit address also matches "name@unit" children, the usual shorthand when
// addressing by path.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		cn := string(c.Name)
		if cn == name {
			return c
		}
		if !strings.ContainsRune(name, '@') {
			if at := strings.IndexByte(cn, '@'); at >= 0 && cn[:at] == name {
				return c
			}
		}
	}
	return nil
}

// Property returns the first property with the given name, or nil.
func (n *Node) Property(name string) *Property {
	for i := range n.Properties {
		if string(n.Properties[i].Name) == name {
			return &n.Properties[i]
		}
	}
	return nil
}

// AsString returns the value as text when it is a single printable
// NUL-terminated string.
func (p *Property) AsString() (string, bool) {
	s, ok := p.Strings()
	if !ok || len(s) != 1 {
		return "", false
	}
	return s[0], true
}

// Strings splits a NUL-terminated string-list value, e.g. a "compatible"
// property with several entries. All entries must be printable ASCII.
func (p *Property) Strings() ([]string, bool) {
	if len(p.Value) == 0 || p.Value[len(p.Value)-1] != 0 {
		return nil, false
	}
	parts := bytes.Split(p.Value[:len(p.Value)-1], []byte{0})
	out := make([]string, len(parts))
	for i, part := range parts {
		for _, b := range part {
			if b < 0x20 || b > 0x7e {
				return nil, false
			}
		}
		out[i] = string(part)
	}
	return out, true
}

// Uint32s returns the value as big-endian 32-bit cells when its length is a
// whole number of cells.
func (p *Property) Uint32s() ([]uint32, bool) {
	if len(p.Value) == 0 || len(p.Value)%4 != 0 {
		return nil, false
	}
	cells := make([]uint32, len(p.Value)/4)
	for i := range cells {
		cells[i] = binary.BigEndian.Uint32(p.Value[i*4:])
	}
	return cells, true
}
