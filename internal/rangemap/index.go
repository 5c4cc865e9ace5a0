package rangemap

import (
	"github.com/google/btree"
)

const indexDegree = 8

// ruleIndex keeps accepted rules ordered by source start and rejects rules
// whose source overlaps an accepted one.
type ruleIndex struct {
	tree *btree.BTreeG[Rule]
}

func newRuleIndex() *ruleIndex {
	return &ruleIndex{
		tree: btree.NewG(indexDegree, func(a, b Rule) bool {
			return a.Source.Start < b.Source.Start
		}),
	}
}

// insert adds r unless its source overlaps an indexed rule, in which case
// that rule is returned with true.
func (x *ruleIndex) insert(r Rule) (Rule, bool) {
	var (
		conflict Rule
		found    bool
	)

	// Nearest rule starting at or before r.
	x.tree.DescendLessOrEqual(r, func(item Rule) bool {
		if _, ok := item.Source.Overlap(r.Source); ok {
			conflict, found = item, true
		}

		return false
	})

	if !found {
		// Nearest rule starting after r.
		x.tree.AscendGreaterOrEqual(r, func(item Rule) bool {
			if _, ok := item.Source.Overlap(r.Source); ok {
				conflict, found = item, true
			}

			return false
		})
	}

	if found {
		return conflict, true
	}

	x.tree.ReplaceOrInsert(r)

	return Rule{}, false
}

// sorted returns the indexed rules ordered by source start.
func (x *ruleIndex) sorted() []Rule {
	res := make([]Rule, 0, x.tree.Len())
	x.tree.Ascend(func(item Rule) bool {
		res = append(res, item)
		return true
	})

	return res
}
