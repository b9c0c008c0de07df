package algo_test

import (
	"slices"
	"sort"
	"testing"

	"bst_code/algo"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTreeSortSanity(t *testing.T) {
	arr := []int{5, 3, 8, 1, 4, 3}
	algo.TreeSort(arr)
	assert.Equal(t, []int{1, 3, 3, 4, 5, 8}, arr)
}

func TestTreeSortEmpty(t *testing.T) {
	arr := []int{}
	algo.TreeSort(arr)
	assert.Equal(t, arr, []int{})
}

func TestTreeSortProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		arr := rapid.SliceOf(rapid.Int()).Draw(t, "arr")

		input := slices.Clone(arr)
		algo.TreeSort(arr)

		assert.Len(arr, len(input))
		assert.ElementsMatch(arr, input)
		assert.True(slices.IsSorted(arr), "arr is not sorted")
	})
}

func TestSortByAgeSanity(t *testing.T) {
	assert := assert.New(t)

	arr := []algo.Person{
		{"Alice", 25},
		{"Bob", 20},
		{"Charlie", 30},
		{"Dana", 20},
	}

	algo.SortByAge(arr)
	assert.Equal([]algo.Person{
		{"Bob", 20},
		{"Dana", 20},
		{"Alice", 25},
		{"Charlie", 30},
	}, arr)
}

func TestSortByAgeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		arr := rapid.SliceOf(rapid.Make[algo.Person]()).Draw(t, "arr")

		input := slices.Clone(arr)
		algo.SortByAge(arr)

		// the standard library's stable sort is the reference
		sort.SliceStable(input, func(i, j int) bool {
			return input[i].Age < input[j].Age
		})
		assert.Equal(input, arr)
	})
}
