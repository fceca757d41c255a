package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAdd(t *testing.T) {
	set := NewSet(2)
	set.Add(3)
	set.Add(3)

	assert.Equal(t, 2, set.Len())
	assert.False(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.True(t, set.Contains(3))
}

func TestSetOperations(t *testing.T) {
	testCases := []struct {
		name         string
		left, right  Set[string]
		difference   Set[string]
		intersection Set[string]
		isSubset     bool
	}{
		{
			name:         "overlap",
			left:         NewSet("a", "b", "c"),
			right:        NewSet("b", "c", "d"),
			difference:   NewSet("a"),
			intersection: NewSet("b", "c"),
		},
		{
			name:         "subset",
			left:         NewSet("b"),
			right:        NewSet("a", "b"),
			difference:   NewSet[string](),
			intersection: NewSet("b"),
			isSubset:     true,
		},
		{
			name:         "disjoint",
			left:         NewSet("a"),
			right:        NewSet("z"),
			difference:   NewSet("a"),
			intersection: NewSet[string](),
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.difference, test.left.Difference(test.right))
			intersection, isSubset := test.left.IntersectionEx(test.right)
			assert.Equal(t, test.intersection, intersection)
			assert.Equal(t, test.isSubset, isSubset)
		})
	}
}

func TestSetUnion(t *testing.T) {
	set := NewSet(1, 2)
	added := set.Union(NewSet(2, 3, 4))

	assert.Equal(t, 2, added)
	assert.Equal(t, NewSet(1, 2, 3, 4), set)
}
