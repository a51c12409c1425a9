package scene

import "painter3d/geom"

// Set is the ordered collection of everything in the world. It keeps
// insertion order until SortByDistance reorders it.
type Set struct {
	entities []Entity
	keys     []float64
}

func (s *Set) Add(e ...Entity) {
	s.entities = append(s.entities, e...)
}

func (s *Set) AddTriangle(t *Triangle) {
	s.Add(TriangleEntity(t))
}

func (s *Set) Len() int {
	return len(s.entities)
}

func (s *Set) At(i int) Entity {
	return s.entities[i]
}

// Entities returns the backing slice. Callers must not resize it.
func (s *Set) Entities() []Entity {
	return s.entities
}

// SortByDistance reorders the set in place from farthest to nearest to cam,
// so drawing in order paints near entities over far ones. Entities at equal
// distance end up in no particular order.
func (s *Set) SortByDistance(cam *geom.Camera) {
	if cap(s.keys) < len(s.entities) {
		s.keys = make([]float64, len(s.entities))
	}
	s.keys = s.keys[:len(s.entities)]
	for i, e := range s.entities {
		s.keys[i] = e.DistanceToCamera(cam)
	}
	s.quicksort(0, len(s.entities)-1)
}

func (s *Set) swap(i, j int) {
	s.entities[i], s.entities[j] = s.entities[j], s.entities[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// quicksort orders entities[lo..hi] (inclusive) by descending key.
func (s *Set) quicksort(lo, hi int) {
	if hi <= lo {
		return
	}
	if hi-lo == 1 {
		if s.keys[lo] < s.keys[hi] {
			s.swap(lo, hi)
		}
		return
	}

	pivot := s.keys[lo+(hi-lo)/2]
	i, j := lo, hi
	for i <= j {
		for s.keys[i] > pivot {
			i++
		}
		for s.keys[j] < pivot {
			j--
		}
		if i <= j {
			s.swap(i, j)
			i++
			j--
		}
	}
	if lo < j {
		s.quicksort(lo, j)
	}
	if i < hi {
		s.quicksort(i, hi)
	}
}
