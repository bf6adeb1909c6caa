// Package render formats parsed device trees for humans.
//
// The decoder keeps names and payloads as raw bytes; everything lossy or
// opinionated about presentation lives here instead. Text output is a
// DTS-like nested listing with property values shown in the most readable
// form available: quoted strings, string lists, 32-bit cell groups, or hex
// bytes. JSON output carries all views of each value side by side so
// scripts never have to re-guess.
//
// Styling uses lipgloss and is optional; color is resolved from the user's
// preference ("auto", "always", "never") with a terminal check in auto mode.
package render
