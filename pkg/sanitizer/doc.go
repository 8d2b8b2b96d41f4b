// Package sanitizer normalizes user input before it is validated or sent to
// other services. Functions are small string transforms that can be chained
// with Apply or packaged with Compose:
//
//	clean := sanitizer.Apply(raw,
//	    sanitizer.Trim,
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.CollapseWhitespace,
//	)
//
// Transforms never fail; they return the best effort result for any input.
package sanitizer
