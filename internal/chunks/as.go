package chunks

// As attempts to narrow a Chunk to a concrete decoded type T, replacing the
// source's reflection-based getChunk(id, Class) downcast: the
// assertion either succeeds or reports false, never panics on a mismatched
// variant.
func As[T Chunk](c Chunk) (T, bool) {
	v, ok := c.(T)
	return v, ok
}
