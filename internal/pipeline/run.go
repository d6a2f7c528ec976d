package pipeline

import "range-remapper/internal/interval"

// RunPoint converts v through every stage in order.
func (p *Pipeline) RunPoint(v uint64) uint64 {
	for _, st := range p.stages {
		v = st.MapPoint(v)
	}

	return v
}

// RunRanges converts the interval set through every stage in order. The
// result covers as many points as the input.
func (p *Pipeline) RunRanges(in interval.Set) interval.Set {
	cur := in
	for _, st := range p.stages {
		if p.coalesce {
			cur = cur.Coalesce()
		}

		cur = st.MapRanges(cur)
	}

	return cur
}

// TracePoint returns the value of v in every category of the path, starting
// with v itself in the entry category.
func (p *Pipeline) TracePoint(v uint64) []uint64 {
	trace := make([]uint64, 0, len(p.stages)+1)
	trace = append(trace, v)

	for _, st := range p.stages {
		v = st.MapPoint(v)
		trace = append(trace, v)
	}

	return trace
}
