package rangemap

import "range-remapper/internal/interval"

// MapRanges converts every interval of in through the table. Each input
// interval is split at rule boundaries into pieces that are either inside one
// rule (shifted by its offset) or inside a gap (kept as is). The output holds
// the pieces in input order and covers exactly as many points as the input.
func (t *Table) MapRanges(in interval.Set) interval.Set {
	out := make(interval.Set, 0, len(in))
	for _, iv := range in {
		out = t.AppendMapped(out, iv)
	}

	return out
}

// AppendMapped appends the pieces of iv, converted through the table, to dst
// and returns the extended slice.
func (t *Table) AppendMapped(dst interval.Set, iv interval.Interval) interval.Set {
	cursor := iv.Start
	i := t.search(cursor)

	for cursor < iv.End {
		if i == len(t.rules) {
			// Past the last rule: the rest is identity.
			return append(dst, interval.Interval{Start: cursor, End: iv.End})
		}

		r := t.rules[i]

		if r.Source.Start > cursor {
			// Gap before rule i.
			end := min(r.Source.Start, iv.End)
			dst = append(dst, interval.Interval{Start: cursor, End: end})
			cursor = end

			continue
		}

		end := min(r.Source.End, iv.End)
		dst = append(dst, interval.Interval{Start: r.Apply(cursor), End: r.Apply(end)})
		cursor = end
		i++
	}

	return dst
}
