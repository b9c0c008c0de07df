package algo

import (
	"cmp"

	"bst_code/bst"
)

// TreeSort sorts arr in increasing order by inserting every element into a
// binary search tree and reading it back in order.
//
// The tree is not balanced, so already sorted input takes O(n^2) time.
func TreeSort[T cmp.Ordered](arr []T) {
	tree := bst.New(arr...)
	copy(arr, tree.Items())
}

type Person struct {
	Name string
	Age  uint64
}

// SortByAge sorts people by increasing Age. People of the same age keep
// their relative order.
func SortByAge(people []Person) {
	byAge := make(map[uint64][]Person)
	ages := bst.New[uint64]()
	for _, p := range people {
		if len(byAge[p.Age]) == 0 {
			ages.Insert(p.Age)
		}
		byAge[p.Age] = append(byAge[p.Age], p)
	}
	var i = 0
	for _, age := range ages.Items() {
		i += copy(people[i:], byAge[age])
	}
}
