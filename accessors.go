package texinspect

import "github.com/woozymasta/texinspect/internal/texfmt"

// FormatName returns the registered name of f, or "unknown" if f is out
// of range.
func FormatName(f Format) string {
	return texfmt.NameOf(f)
}

// FormatIsCompressed reports whether f names a block-compressed format.
// This is a derived property of f's position in the enum, not a stored
// bit, matching the original's enum-position check.
func FormatIsCompressed(f Format) bool {
	return f.IsCompressed()
}

// FormatHasAlpha reports whether f carries an alpha channel.
func FormatHasAlpha(f Format) bool {
	return texfmt.HasAlpha(f)
}
