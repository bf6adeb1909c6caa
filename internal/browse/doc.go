// Package browse implements the interactive device-tree explorer.
//
// It is a bubbletea program over a parsed, immutable tree: a scrollable
// node listing with expand/collapse, an incremental search prompt, and a
// detail pane showing the selected node's properties. The package never
// touches blob bytes; it renders whatever the decoder produced.
//
// Key bindings:
//   - up/down, pgup/pgdown: move the selection
//   - enter/space: expand or collapse the selected node
//   - /: search node and property names, enter jumps to the next match
//   - q or ctrl+c: quit
package browse
