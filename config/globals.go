package config

const (
	// attributes of the default 7x12 monospace atlas
	DefaultCellWidth  = 7
	DefaultCellHeight = 12

	// font tables are indexed by a single byte
	TableSize = 256

	DefaultInk        = "not-white"
	DefaultFormat     = "glsl"
	DefaultSampleText = "Hello, World!"
)

// DefaultRanges are printable ASCII followed by the first part of the Latin-1
// supplement. Together they cover 165 characters.
var DefaultRanges = []Range{
	{Start: 33, End: 127},
	{Start: 161, End: 232},
}
