package buffer

// Storage is a move-only handle for a caller-owned slice. Adopting a handle
// empties it, so the previous owner cannot reach the slice through it anymore.
type Storage struct {
	data []int32
}

// Wrap puts a slice into a handle. Callers should drop their own references
// to data after wrapping.
func Wrap(data []int32) *Storage {
	return &Storage{data: data}
}

// Len returns the length of the wrapped slice, or 0 for an empty handle.
func (s *Storage) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Empty is a predicate: has this handle given its slice away?
func (s *Storage) Empty() bool {
	return s == nil || s.data == nil
}

// Release takes the slice out of the handle.
func (s *Storage) Release() []int32 {
	if s == nil {
		return nil
	}
	data := s.data
	s.data = nil
	return data
}
