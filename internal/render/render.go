package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muurk/fdtool/internal/fdt"
)

// Options controls text rendering.
type Options struct {
	// Color enables lipgloss styling. Resolve user preference with
	// ColorEnabled before setting this.
	Color bool

	// MaxValueBytes truncates long raw payloads in text output.
	// Zero means no truncation.
	MaxValueBytes int
}

const indent = "    "

// Tree writes the header summary followed by the whole node tree,
// matching the shape of a decompiled .dts source file.
func Tree(w io.Writer, t *fdt.Tree, opts Options) {
	h := t.Header
	summary := fmt.Sprintf("// device tree v%d (compat %d, boot cpu %#x), %d bytes",
		h.Version, h.LastCompVersion, h.BootCpuidPhys, h.TotalSize)
	fmt.Fprintln(w, opts.style(MutedStyle, summary))
	Node(w, t.Root, opts)
}

// Node writes one node and its subtree.
func Node(w io.Writer, n *fdt.Node, opts Options) {
	writeNode(w, n, 0, opts)
}

func writeNode(w io.Writer, n *fdt.Node, depth int, opts Options) {
	pad := strings.Repeat(indent, depth)

	name := string(n.Name)
	if name == "" {
		name = "/"
	}
	fmt.Fprintf(w, "%s%s %s\n", pad, opts.style(NodeStyle, name), opts.style(MutedStyle, "{"))

	for i := range n.Properties {
		p := &n.Properties[i]
		fmt.Fprintf(w, "%s%s%s%s\n",
			pad+indent,
			opts.style(PropStyle, string(p.Name)),
			opts.style(ValueStyle, Value(p, opts.MaxValueBytes)),
			opts.style(MutedStyle, ";"))
	}

	for _, c := range n.Children {
		writeNode(w, c, depth+1, opts)
	}

	fmt.Fprintf(w, "%s%s\n", pad, opts.style(MutedStyle, "};"))
}

// Value formats a property payload in the most readable form available:
// nothing for an empty (boolean) property, quoted strings, 32-bit cell
// groups, or hex bytes. max > 0 truncates the hex form.
func Value(p *fdt.Property, max int) string {
	if len(p.Value) == 0 {
		return ""
	}
	if strs, ok := p.Strings(); ok {
		quoted := make([]string, len(strs))
		for i, s := range strs {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return " = " + strings.Join(quoted, ", ")
	}
	if cells, ok := p.Uint32s(); ok {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = fmt.Sprintf("%#x", c)
		}
		return " = <" + strings.Join(parts, " ") + ">"
	}

	data := p.Value
	suffix := ""
	if max > 0 && len(data) > max {
		data = data[:max]
		suffix = fmt.Sprintf("... (%d bytes)", len(p.Value))
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return " = [" + strings.Join(parts, " ") + "]" + suffix
}

// Header writes every header field, including the version-gated tail, in
// blob order.
func Header(w io.Writer, h fdt.Header, opts Options) {
	rows := []struct {
		name  string
		value uint32
		hex   bool
		gated string
	}{
		{name: "totalsize", value: h.TotalSize},
		{name: "off_dt_struct", value: h.OffDTStruct, hex: true},
		{name: "off_dt_strings", value: h.OffDTStrings, hex: true},
		{name: "off_mem_rsvmap", value: h.OffMemRsvmap, hex: true},
		{name: "version", value: h.Version},
		{name: "last_comp_version", value: h.LastCompVersion},
		{name: "boot_cpuid_phys", value: h.BootCpuidPhys, hex: true, gated: "version > 2"},
		{name: "size_dt_strings", value: h.SizeDTStrings, gated: "version > 3"},
		{name: "size_dt_struct", value: h.SizeDTStruct, gated: "version > 17"},
	}

	for _, row := range rows {
		val := fmt.Sprintf("%d", row.value)
		if row.hex {
			val = fmt.Sprintf("%#x", row.value)
		}
		line := fmt.Sprintf("%-18s %s", row.name, opts.style(ValueStyle, val))
		if row.gated != "" {
			line += " " + opts.style(MutedStyle, "("+row.gated+")")
		}
		fmt.Fprintln(w, line)
	}
}

// Problems writes verify findings, one per line.
func Problems(w io.Writer, probs []fdt.Problem, opts Options) {
	for _, p := range probs {
		fmt.Fprintf(w, "%s %s\n", opts.style(ProblemStyle, p.Check+":"), p.Detail)
	}
}

func (o Options) style(s interface{ Render(...string) string }, text string) string {
	if !o.Color {
		return text
	}
	return s.Render(text)
}
