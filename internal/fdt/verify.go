package fdt

import "fmt"

// Problem is one structural finding from Verify.
type Problem struct {
	Check  string
	Detail string
}

func (p Problem) String() string {
	return p.Check + ": " + p.Detail
}

// Verify runs the strict structural checks Parse deliberately skips. It
// takes the original buffer alongside the parsed tree because several checks
// compare header fields against real byte counts. An empty result means the
// blob is well-formed beyond what Parse already guarantees.
func Verify(buf []byte, t *Tree) []Problem {
	var probs []Problem
	add := func(check, format string, args ...any) {
		probs = append(probs, Problem{Check: check, Detail: fmt.Sprintf(format, args...)})
	}

	h := t.Header
	if int(h.TotalSize) != len(buf) {
		add("totalsize", "header says %d bytes, buffer is %d", h.TotalSize, len(buf))
	}
	if int(h.OffDTStruct) >= len(buf) {
		add("off_dt_struct", "%#x is outside the blob", h.OffDTStruct)
	}
	if int(h.OffDTStrings) >= len(buf) {
		add("off_dt_strings", "%#x is outside the blob", h.OffDTStrings)
	}
	if int(h.OffMemRsvmap) >= len(buf) {
		add("off_mem_rsvmap", "%#x is outside the blob", h.OffMemRsvmap)
	}
	if h.LastCompVersion > h.Version {
		add("last_comp_version", "%d exceeds version %d", h.LastCompVersion, h.Version)
	}
	if !t.Terminated {
		add("structure", "no END tag after the root node")
	}

	// Version-3+ blobs declare the strings-block size, so out-of-range name
	// offsets become checkable. Parse resolves them as long as they land
	// inside the buffer; flag anything past the declared bound here.
	if h.Version > 3 && h.SizeDTStrings > 0 {
		walkNodes(t.Root, func(n *Node) {
			for i := range n.Properties {
				p := &n.Properties[i]
				end := p.NameOff + uint32(len(p.Name)) + 1
				if end > h.SizeDTStrings {
					add("strings", "property %q name offset %#x outside declared strings block (%d bytes)",
						p.Name, p.NameOff, h.SizeDTStrings)
				}
			}
		})
	}

	return probs
}

func walkNodes(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		walkNodes(c, fn)
	}
}
