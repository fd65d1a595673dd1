// Package display draws a single line of text centered on a fullscreen tcell screen.
//
// The screen is black with white text and a hidden cursor. A background pump
// redraws on resize and reports quit keys (Esc, Ctrl-C, q) on the Events channel.
package display
