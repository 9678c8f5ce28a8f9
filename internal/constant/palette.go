package constant

// Executive color palette. Kept in one place so chart specs and the embedded
// frontend stay consistent.
const (
	ColorPrimary    = "#1B2A4A" // deep navy
	ColorAccent     = "#2E86AB" // steel blue
	ColorSuccess    = "#2D936C" // muted green
	ColorWarning    = "#D4A843" // muted gold
	ColorDanger     = "#C44536" // muted red
	ColorLightBg    = "#F8F9FA" // near-white
	ColorText       = "#333333" // dark gray
	ColorMuted      = "#8C8C8C" // medium gray
	ColorCardBorder = "#E8ECF0" // light border
)
