// Package editor provides a Bubble Tea component that edits a soft-wrapped
// buffer.
//
// The package is responsible for key and mouse dispatch, viewport scrolling,
// gutter and border rendering, and change notifications. Wrapping, cursor
// movement and coordinate translation live in the buffer package.
package editor
