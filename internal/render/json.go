package render

import (
	"encoding/hex"
	"encoding/json"

	"github.com/muurk/fdtool/internal/fdt"
)

// JSON mirrors of the tree types. Every property carries its raw bytes; the
// string and cell views are included when they apply so consumers don't
// re-implement the heuristics.

type JSONTree struct {
	Header JSONHeader `json:"header"`
	Root   JSONNode   `json:"root"`
}

type JSONHeader struct {
	TotalSize       uint32 `json:"totalsize"`
	OffDTStruct     uint32 `json:"off_dt_struct"`
	OffDTStrings    uint32 `json:"off_dt_strings"`
	OffMemRsvmap    uint32 `json:"off_mem_rsvmap"`
	Version         uint32 `json:"version"`
	LastCompVersion uint32 `json:"last_comp_version"`
	BootCpuidPhys   uint32 `json:"boot_cpuid_phys,omitempty"`
	SizeDTStrings   uint32 `json:"size_dt_strings,omitempty"`
	SizeDTStruct    uint32 `json:"size_dt_struct,omitempty"`
}

type JSONNode struct {
	Name       string         `json:"name"`
	Properties []JSONProperty `json:"properties,omitempty"`
	Children   []JSONNode     `json:"children,omitempty"`
}

type JSONProperty struct {
	Name    string   `json:"name"`
	Length  int      `json:"length"`
	Bytes   string   `json:"bytes"` // hex encoding of the raw payload
	Strings []string `json:"strings,omitempty"`
	Cells   []uint32 `json:"cells,omitempty"`
}

// TreeJSON marshals a parsed tree as indented JSON.
func TreeJSON(t *fdt.Tree) ([]byte, error) {
	out := JSONTree{
		Header: JSONHeader{
			TotalSize:       t.Header.TotalSize,
			OffDTStruct:     t.Header.OffDTStruct,
			OffDTStrings:    t.Header.OffDTStrings,
			OffMemRsvmap:    t.Header.OffMemRsvmap,
			Version:         t.Header.Version,
			LastCompVersion: t.Header.LastCompVersion,
			BootCpuidPhys:   t.Header.BootCpuidPhys,
			SizeDTStrings:   t.Header.SizeDTStrings,
			SizeDTStruct:    t.Header.SizeDTStruct,
		},
		Root: nodeJSON(t.Root),
	}
	return json.MarshalIndent(out, "", "  ")
}

func nodeJSON(n *fdt.Node) JSONNode {
	out := JSONNode{Name: string(n.Name)}
	for i := range n.Properties {
		p := &n.Properties[i]
		jp := JSONProperty{
			Name:   string(p.Name),
			Length: len(p.Value),
			Bytes:  hex.EncodeToString(p.Value),
		}
		if strs, ok := p.Strings(); ok {
			jp.Strings = strs
		} else if cells, ok := p.Uint32s(); ok {
			jp.Cells = cells
		}
		out.Properties = append(out.Properties, jp)
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, nodeJSON(c))
	}
	return out
}
