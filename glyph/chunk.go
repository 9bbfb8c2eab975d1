package glyph

// Chunk splits s into consecutive pieces of size elements. The last piece is
// shorter when len(s) is not a multiple of size. The pieces share memory with
// s. A size below one yields nil.
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 {
		return nil
	}

	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for len(s) > size {
		chunks = append(chunks, s[:size:size])
		s = s[size:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}
