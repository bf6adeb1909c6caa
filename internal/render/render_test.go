package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/muurk/fdtool/internal/fdt"
)

func demoTree() *fdt.Tree {
	return &fdt.Tree{
		Header: fdt.Header{Version: 17, LastCompVersion: 16, TotalSize: 100},
		Root: &fdt.Node{
			Properties: []fdt.Property{
				{Name: []byte("compatible"), Value: []byte("vendor,board\x00")},
				{Name: []byte("#size-cells"), Value: []byte{0, 0, 0, 1}},
				{Name: []byte("ranges")},
				{Name: []byte("blob"), Value: []byte{0xde, 0xad, 0xbe}},
			},
			Children: []*fdt.Node{
				{Name: []byte("cpus")},
			},
		},
	}
}

func TestTreeText(t *testing.T) {
	var buf bytes.Buffer
	Tree(&buf, demoTree(), Options{})

	want := `// device tree v17 (compat 16, boot cpu 0), 100 bytes
/ {
    compatible = "vendor,board";
    #size-cells = <0x1>;
    ranges;
    blob = [de ad be];
    cpus {
    };
};
`
	if got := buf.String(); got != want {
		t.Errorf("Tree output:\n%s\nwant:\n%s", got, want)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		max   int
		want  string
	}{
		{name: "empty boolean property", value: nil, want: ""},
		{name: "single string", value: []byte("ok\x00"), want: ` = "ok"`},
		{
			name:  "string list",
			value: []byte("a\x00bc\x00"),
			want:  ` = "a", "bc"`,
		},
		{
			name:  "cells",
			value: []byte{0, 0, 0, 2, 0x80, 0, 0, 0},
			want:  " = <0x2 0x80000000>",
		},
		{name: "raw bytes", value: []byte{1, 0xff}, want: " = [01 ff]"},
		{
			name:  "truncated raw bytes",
			value: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			max:   4,
			want:  " = [00 01 02 03]... (10 bytes)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fdt.Property{Name: []byte("x"), Value: tt.value}
			if got := Value(p, tt.max); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderListsAllFields(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, fdt.Header{Version: 17, TotalSize: 4096, OffDTStruct: 0x28}, Options{})

	out := buf.String()
	for _, field := range []string{
		"totalsize", "off_dt_struct", "off_dt_strings", "off_mem_rsvmap",
		"version", "last_comp_version", "boot_cpuid_phys",
		"size_dt_strings", "size_dt_struct",
	} {
		if !strings.Contains(out, field) {
			t.Errorf("header output missing %q:\n%s", field, out)
		}
	}
	if !strings.Contains(out, "0x28") {
		t.Errorf("off_dt_struct not rendered in hex:\n%s", out)
	}
}

func TestTreeJSON(t *testing.T) {
	data, err := TreeJSON(demoTree())
	if err != nil {
		t.Fatalf("TreeJSON: %v", err)
	}

	var got JSONTree
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if got.Header.Version != 17 {
		t.Errorf("header version = %d, want 17", got.Header.Version)
	}
	if len(got.Root.Properties) != 4 {
		t.Fatalf("%d properties, want 4", len(got.Root.Properties))
	}

	compat := got.Root.Properties[0]
	if compat.Name != "compatible" || len(compat.Strings) != 1 || compat.Strings[0] != "vendor,board" {
		t.Errorf("compatible = %+v", compat)
	}
	if compat.Bytes != "76656e646f722c626f61726400" {
		t.Errorf("compatible bytes = %q", compat.Bytes)
	}

	cells := got.Root.Properties[1]
	if len(cells.Cells) != 1 || cells.Cells[0] != 1 {
		t.Errorf("#size-cells = %+v", cells)
	}

	if len(got.Root.Children) != 1 || got.Root.Children[0].Name != "cpus" {
		t.Errorf("children = %+v", got.Root.Children)
	}
}

func TestProblems(t *testing.T) {
	var buf bytes.Buffer
	Problems(&buf, []fdt.Problem{
		{Check: "totalsize", Detail: "header says 10 bytes, buffer is 12"},
	}, Options{})

	if got := buf.String(); got != "totalsize: header says 10 bytes, buffer is 12\n" {
		t.Errorf("Problems output = %q", got)
	}
}
