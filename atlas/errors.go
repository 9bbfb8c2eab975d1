package atlas

import "fmt"

// DecodeError is returned when an atlas cannot be read or is not a decodable
// image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode atlas %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError is returned for a pixel outside the atlas. It usually
// means the cell size or character count does not match the atlas image.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (%d,%d) is outside the %dx%d atlas", e.X, e.Y, e.Width, e.Height)
}
