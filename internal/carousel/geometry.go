package carousel

import "math"

// DefaultBreakpoint is the window width (logical pixels) at and above which
// two items are shown per page.
const DefaultBreakpoint = 640.0

// ItemsPerPage returns how many items fit a page for the given window width
// using DefaultBreakpoint.
func ItemsPerPage(windowWidth float64) int {
	return ItemsPerPageAt(windowWidth, DefaultBreakpoint)
}

// ItemsPerPageAt is ItemsPerPage with an explicit breakpoint. The result is
// always at least 1.
func ItemsPerPageAt(windowWidth, breakpoint float64) int {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if windowWidth >= breakpoint {
		return 2
	}
	return 1
}

// TotalPages returns ceil(totalItems / itemsPerPage).
func TotalPages(totalItems, itemsPerPage int) int {
	if totalItems <= 0 {
		return 0
	}
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	return int(math.Ceil(float64(totalItems) / float64(itemsPerPage)))
}

// MaxIndex is the largest index the first visible item can take.
func MaxIndex(totalItems, itemsPerPage int) int {
	return max(0, totalItems-itemsPerPage)
}

// ClampIndex saturates idx to [0, MaxIndex(totalItems, itemsPerPage)].
func ClampIndex(idx, totalItems, itemsPerPage int) int {
	return min(max(idx, 0), MaxIndex(totalItems, itemsPerPage))
}

// ItemWidth returns the width of one item slot.
func ItemWidth(viewportWidth float64, itemsPerPage int) float64 {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	return viewportWidth / float64(itemsPerPage)
}

// ContentWidth is the scrollable extent of totalItems slots.
func ContentWidth(viewportWidth float64, totalItems, itemsPerPage int) float64 {
	return ItemWidth(viewportWidth, itemsPerPage) * float64(totalItems)
}
