// Package wininput drives the Windows desktop through user32 for the click
// loop.
package wininput

// clampInt32ToInt16 fits virtual-desktop coordinates into the position type
// shared with the X11 backend.
func clampInt32ToInt16(value int32) int16 {
	if value < -32768 {
		return -32768
	}
	if value > 32767 {
		return 32767
	}
	return int16(value)
}
