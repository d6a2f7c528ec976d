package pipeline

import (
	"slices"

	"range-remapper/internal/category"
	"range-remapper/internal/rangemap"
)

// orderTables sorts tables into execution order: a table runs after every
// table that produces its source category. When several tables are ready the
// one given first wins, so the order is deterministic.
//
// If some tables can never run, ok is false and stuck is the source category
// of the first of them.
func orderTables(tables []*rangemap.Table) (ordered []*rangemap.Table, stuck category.ID, ok bool) {
	producers := make(map[category.ID]int, len(tables))
	consumers := make(map[category.ID][]int, len(tables))

	for i, t := range tables {
		producers[t.To()]++
		consumers[t.From()] = append(consumers[t.From()], i)
	}

	waiting := make([]int, len(tables))
	ready := make([]int, 0, len(tables))

	for i, t := range tables {
		waiting[i] = producers[t.From()]
		if waiting[i] == 0 {
			ready = append(ready, i)
		}
	}

	ordered = make([]*rangemap.Table, 0, len(tables))

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		ordered = append(ordered, tables[i])

		for _, j := range consumers[tables[i].To()] {
			waiting[j]--
			if waiting[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	for i, n := range waiting {
		if n > 0 {
			return nil, tables[i].From(), false
		}
	}

	return ordered, 0, true
}
