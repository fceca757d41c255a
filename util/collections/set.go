package collections

type Set[V comparable] map[V]struct{}

// NewSet returns a Set holding the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

func (set Set[V]) Len() int {
	return len(set)
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for value := range set {
		if !other.Contains(value) {
			difference.Add(value)
		}
	}
	return difference
}

// IntersectionEx returns a new Set containing all elements present in both sets,
// and a boolean indicating whether the calling set is a non-strict subset of the other
func (set Set[V]) IntersectionEx(other Set[V]) (Set[V], bool) {
	isSubset := true
	intersection := make(Set[V])
	for value := range set {
		if other.Contains(value) {
			intersection.Add(value)
		} else {
			isSubset = false
		}
	}
	return intersection, isSubset
}

// Union adds every element of other to the set, returning how many were new
func (set Set[V]) Union(other Set[V]) int {
	added := 0
	for value := range other {
		if !set.Contains(value) {
			set.Add(value)
			added++
		}
	}
	return added
}
