package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorWrote(t *testing.T) {
	author := &Author{
		Name:  "Stephen King",
		Books: []string{"The Shining", "IT"},
	}

	if !author.Wrote("IT") {
		t.Error("Expected author to have written 'IT'")
	}

	if author.Wrote("it") {
		t.Error("Expected title match to be case-sensitive")
	}

	if author.Wrote("Hamlet") {
		t.Error("Expected author not to have written 'Hamlet'")
	}
}

func TestDatasetAddIsAppendOnly(t *testing.T) {
	twain := &Author{Name: "Mark Twain", Books: []string{"The Adventures of Huckleberry Finn"}}
	conrad := &Author{Name: "Joseph Conrad", Books: []string{"Heart of Darkness"}}
	ds := NewDataset(twain, conrad)

	before := ds.List()

	added := &Author{Name: "Jane Austen", Books: []string{"Emma"}}
	ds.Add(added)

	after := ds.List()
	assert.Len(t, after, 3)
	assert.Same(t, twain, after[0])
	assert.Same(t, conrad, after[1])
	assert.Same(t, added, after[2])

	// Earlier snapshots are not affected by the append.
	assert.Len(t, before, 2)
}

func TestDatasetAllowsDuplicateNames(t *testing.T) {
	ds := NewDataset()

	ds.Add(&Author{Name: "Anonymous", Books: []string{"Beowulf"}})
	ds.Add(&Author{Name: "Anonymous", Books: []string{"Beowulf"}})

	assert.Equal(t, 2, ds.Len())
}

func TestNewDatasetCopiesInput(t *testing.T) {
	authors := []*Author{{Name: "A", Books: []string{"X"}}}
	ds := NewDataset(authors...)

	authors[0] = &Author{Name: "B", Books: []string{"Y"}}

	list, err := ds.Authors()
	assert.NoError(t, err)
	assert.Equal(t, "A", list[0].Name)
}
