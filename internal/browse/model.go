package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fdtool/internal/fdt"
	"github.com/muurk/fdtool/internal/render"
)

// row is one visible line of the tree listing.
type row struct {
	node  *fdt.Node
	depth int
	path  string
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Toggle   key.Binding
	Search   key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Search, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Toggle, k.Search, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the tree explorer.
type Model struct {
	tree     *fdt.Tree
	filePath string

	rows     []row
	cursor   int
	expanded map[*fdt.Node]bool

	viewport  viewport.Model
	search    textinput.Model
	searching bool

	keys keyMap
	help help.Model

	width  int
	height int
	ready  bool
}

// New creates an explorer over a parsed tree. filePath is only used in the
// title bar.
func New(tree *fdt.Tree, filePath string) Model {
	search := textinput.New()
	search.Placeholder = "node or property name"
	search.Prompt = "/"

	m := Model{
		tree:     tree,
		filePath: filePath,
		expanded: map[*fdt.Node]bool{tree.Root: true},
		search:   search,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.rebuildRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - m.chromeHeight()
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.viewport.Height)

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.viewport.Height)

	case key.Matches(msg, m.keys.Toggle):
		n := m.rows[m.cursor].node
		if len(n.Children) > 0 {
			m.expanded[n] = !m.expanded[n]
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	}

	m.syncViewport()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.jumpToMatch(m.search.Value())
		m.syncViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("fdtool · "+m.filePath) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(m.detailPane() + "\n")

	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// chromeHeight is the number of lines around the viewport: title, detail
// pane, and the help/search line.
func (m Model) chromeHeight() int {
	return 2 + m.detailPaneLines()
}

const maxDetailProps = 6

func (m Model) detailPaneLines() int {
	return maxDetailProps + 1
}

// detailPane renders the selected node's path and leading properties.
func (m Model) detailPane() string {
	r := m.rows[m.cursor]
	lines := []string{paneTitleStyle.Render(r.path)}

	props := r.node.Properties
	shown := len(props)
	if shown > maxDetailProps {
		shown = maxDetailProps
	}
	for i := 0; i < shown; i++ {
		p := &props[i]
		line := "  " + propNameStyle.Render(string(p.Name)) + render.Value(p, 32)
		lines = append(lines, line)
	}
	if len(props) > shown {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  ... %d more", len(props)-shown)))
	}
	for len(lines) < m.detailPaneLines() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// rebuildRows flattens the tree according to the current expansion state.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	m.appendRows(m.tree.Root, 0, "/")
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *Model) appendRows(n *fdt.Node, depth int, path string) {
	m.rows = append(m.rows, row{node: n, depth: depth, path: path})
	if !m.expanded[n] {
		return
	}
	for _, c := range n.Children {
		childPath := path + string(c.Name)
		if path != "/" {
			childPath = path + "/" + string(c.Name)
		}
		m.appendRows(c, depth+1, childPath)
	}
}

// jumpToMatch moves the cursor to the next row (after the current one)
// whose node name or property names contain the query. Collapsed subtrees
// are expanded along the way so the match is visible.
func (m *Model) jumpToMatch(query string) {
	if query == "" {
		return
	}
	m.expandAll(m.tree.Root)
	m.rebuildRows()

	for i := 1; i <= len(m.rows); i++ {
		r := m.rows[(m.cursor+i)%len(m.rows)]
		if rowMatches(r, query) {
			m.cursor = (m.cursor + i) % len(m.rows)
			return
		}
	}
}

func rowMatches(r row, query string) bool {
	if strings.Contains(string(r.node.Name), query) {
		return true
	}
	for i := range r.node.Properties {
		if strings.Contains(string(r.node.Properties[i].Name), query) {
			return true
		}
	}
	return false
}

func (m *Model) expandAll(n *fdt.Node) {
	if len(n.Children) > 0 {
		m.expanded[n] = true
	}
	for _, c := range n.Children {
		m.expandAll(c)
	}
}

// syncViewport refreshes the listing and keeps the cursor in view.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}

	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		lines[i] = m.renderRow(r, i == m.cursor)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) renderRow(r row, selected bool) string {
	name := string(r.node.Name)
	if name == "" {
		name = "/"
	}

	marker := "  "
	if len(r.node.Children) > 0 {
		if m.expanded[r.node] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	line := strings.Repeat("  ", r.depth) + marker + name
	count := len(r.node.Properties)

	// Styles are not nested: a selected row is styled as one run so the
	// highlight background stays unbroken.
	if selected {
		if count > 0 {
			line += fmt.Sprintf("  (%d props)", count)
		}
		return selectedStyle.Render("> " + line)
	}

	out := "  " + nodeStyle.Render(line)
	if count > 0 {
		out += mutedStyle.Render(fmt.Sprintf("  (%d props)", count))
	}
	return out
}
