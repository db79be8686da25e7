package store

import "github.com/iov-one/starksig/errors"

// sliceIterator iterates over a preloaded, ordered list of models.
type sliceIterator struct {
	data []Model
	pos  int
}

var _ Iterator = (*sliceIterator)(nil)

// NewSliceIterator returns an iterator over given models, in the order
// they are provided.
func NewSliceIterator(data []Model) Iterator {
	return &sliceIterator{data: data}
}

func (s *sliceIterator) Next() (key, value []byte, err error) {
	if s.pos >= len(s.data) {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice")
	}
	m := s.data[s.pos]
	s.pos++
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}

// ReadAll drains given iterator and releases it.
func ReadAll(it Iterator) ([]Model, error) {
	defer it.Release()

	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, Pair(key, value))
	}
}
