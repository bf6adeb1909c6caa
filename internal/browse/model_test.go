package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fdtool/internal/fdt"
)

func testTree() *fdt.Tree {
	cpu0 := &fdt.Node{
		Name: []byte("cpu@0"),
		Properties: []fdt.Property{
			{Name: []byte("device_type"), Value: []byte("cpu\x00")},
		},
	}
	cpus := &fdt.Node{Name: []byte("cpus"), Children: []*fdt.Node{cpu0}}
	chosen := &fdt.Node{Name: []byte("chosen")}
	return &fdt.Tree{
		Root: &fdt.Node{Children: []*fdt.Node{cpus, chosen}},
	}
}

func TestNewShowsRootExpanded(t *testing.T) {
	m := New(testTree(), "test.dtb")

	// Root plus its two children; cpu@0 hidden behind collapsed cpus.
	if len(m.rows) != 3 {
		t.Fatalf("%d rows, want 3", len(m.rows))
	}
	if m.rows[0].path != "/" || m.rows[1].path != "/cpus" || m.rows[2].path != "/chosen" {
		t.Errorf("paths = %q, %q, %q", m.rows[0].path, m.rows[1].path, m.rows[2].path)
	}
}

func TestToggleExpandsNode(t *testing.T) {
	m := New(testTree(), "test.dtb")
	m.cursor = 1 // cpus

	updated, _ := m.updateBrowse(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if len(m.rows) != 4 {
		t.Fatalf("%d rows after expand, want 4", len(m.rows))
	}
	if m.rows[2].path != "/cpus/cpu@0" {
		t.Errorf("row 2 path = %q, want /cpus/cpu@0", m.rows[2].path)
	}

	updated, _ = m.updateBrowse(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if len(m.rows) != 3 {
		t.Errorf("%d rows after collapse, want 3", len(m.rows))
	}
}

func TestCursorClamping(t *testing.T) {
	m := New(testTree(), "test.dtb")

	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after underflow, want 0", m.cursor)
	}
	m.moveCursor(100)
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d after overflow, want %d", m.cursor, len(m.rows)-1)
	}
}

func TestJumpToMatchFindsPropertyName(t *testing.T) {
	m := New(testTree(), "test.dtb")

	// cpu@0 is collapsed away; searching must expand and land on it.
	m.jumpToMatch("device_type")

	if got := m.rows[m.cursor].path; got != "/cpus/cpu@0" {
		t.Errorf("cursor at %q, want /cpus/cpu@0", got)
	}
}

func TestJumpToMatchWrapsAround(t *testing.T) {
	m := New(testTree(), "test.dtb")
	m.jumpToMatch("chosen")
	first := m.rows[m.cursor].path

	m.jumpToMatch("chosen")
	if got := m.rows[m.cursor].path; got != first {
		t.Errorf("second search landed on %q, want %q", got, first)
	}
}
