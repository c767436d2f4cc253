// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TileWidth is the inner width of a tool tile on the home screen
	TileWidth = 22

	// TilesPerRow is the number of tool tiles per grid row
	TilesPerRow = 3

	// DefaultWrapWidth is the default width for text wrapping when the
	// viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// PickerVisibleRows is the number of rows shown in the file picker list
	PickerVisibleRows = 12
)
