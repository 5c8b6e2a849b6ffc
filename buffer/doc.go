// Package buffer implements a line-wrapping text buffer with bidirectional
// coordinate mapping.
//
// Logical lines are stored as runes. Rewrap produces a greedy word wrap of those
// lines at a given width, and the cursor lives in wrapped display coordinates
// (row, col). Logical coordinates (line, col) are derived from the wrap on demand.
//
// All coordinates are 0-based rune offsets.
package buffer
