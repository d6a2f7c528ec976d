package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/category"
	"range-remapper/internal/interval"
	"range-remapper/internal/rangemap"
)

func mustTable(t *testing.T, from, to category.ID, triples ...Triple) *rangemap.Table {
	t.Helper()

	rules := make([]rangemap.Rule, 0, len(triples))
	for _, tr := range triples {
		r, err := rangemap.RuleFromTriple(tr.Dest, tr.Source, tr.Length)
		require.NoError(t, err)

		rules = append(rules, r)
	}

	tbl, err := rangemap.NewTable(from, to, rules)
	require.NoError(t, err)

	return tbl
}

// twoStage chains the seed-to-soil sample table into a stage that moves
// [81, 95) up by ten.
func twoStage(t *testing.T) *Pipeline {
	t.Helper()

	first := mustTable(t, 0, 1, Triple{50, 98, 2}, Triple{52, 50, 48})
	second := mustTable(t, 1, 2, Triple{91, 81, 14})

	p, err := New(0, 2, []*rangemap.Table{first, second})
	require.NoError(t, err)

	return p
}

func TestNew_Valid(t *testing.T) {
	p := twoStage(t)

	assert.Equal(t, category.ID(0), p.Entry())
	assert.Equal(t, category.ID(2), p.Terminal())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []category.ID{0, 1, 2}, p.Categories())
	assert.Len(t, p.Stages(), 2)
	assert.Nil(t, p.Names())
}

func TestNew_NoStages(t *testing.T) {
	_, err := New(0, 1, nil)
	require.ErrorIs(t, err, ErrNoStages)
}

func TestNew_Disconnected(t *testing.T) {
	a := mustTable(t, 0, 1)
	b := mustTable(t, 2, 3)

	_, err := New(0, 3, []*rangemap.Table{a, b})

	var disc *DisconnectedChainError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, 1, disc.Index)
	assert.Equal(t, category.ID(1), disc.Want)
	assert.Equal(t, category.ID(2), disc.Got)
}

func TestNew_WrongEntry(t *testing.T) {
	a := mustTable(t, 1, 2)

	_, err := New(0, 2, []*rangemap.Table{a})

	var disc *DisconnectedChainError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, 0, disc.Index)
}

func TestNew_WrongTerminal(t *testing.T) {
	a := mustTable(t, 0, 1)

	_, err := New(0, 5, []*rangemap.Table{a})

	var disc *DisconnectedChainError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, -1, disc.Index)
	assert.Contains(t, err.Error(), "want terminal")
}

func TestNew_RevisitedCategory(t *testing.T) {
	a := mustTable(t, 0, 1)
	b := mustTable(t, 1, 0)
	c := mustTable(t, 0, 2)

	_, err := New(0, 2, []*rangemap.Table{a, b, c})

	var cyc *CycleError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, category.ID(0), cyc.Category)
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	a := mustTable(t, 0, 1)
	stages := []*rangemap.Table{a}

	p, err := New(0, 1, stages)
	require.NoError(t, err)

	stages[0] = mustTable(t, 5, 6)
	assert.Equal(t, category.ID(0), p.Stages()[0].From())
}

func TestRunPoint(t *testing.T) {
	p := twoStage(t)

	assert.Equal(t, uint64(91), p.RunPoint(79))
	assert.Equal(t, uint64(14), p.RunPoint(14))
	assert.Equal(t, []uint64{79, 81, 91}, p.TracePoint(79))
}

func TestRunPoint_MatchesManualFold(t *testing.T) {
	p := twoStage(t)

	for v := uint64(0); v < 120; v++ {
		want := v
		for _, st := range p.Stages() {
			want = st.MapPoint(want)
		}

		assert.Equal(t, want, p.RunPoint(v), "value %d", v)
	}
}

func TestRunRanges(t *testing.T) {
	p := twoStage(t)

	out := p.RunRanges(interval.Set{interval.New(79, 93)})

	assert.Equal(t, interval.Set{interval.New(91, 105)}, out)
}

func TestRunRanges_MatchesManualFold(t *testing.T) {
	p := twoStage(t)
	in := interval.Set{interval.New(0, 60), interval.New(90, 120)}

	want := in
	for _, st := range p.Stages() {
		want = st.MapRanges(want)
	}

	assert.Equal(t, want, p.RunRanges(in))
	assert.Equal(t, in.TotalLen(), p.RunRanges(in).TotalLen())
}

func TestRunRanges_Coalesce(t *testing.T) {
	first := mustTable(t, 0, 1, Triple{50, 98, 2}, Triple{52, 50, 48})
	second := mustTable(t, 1, 2, Triple{91, 81, 14})

	plain, err := New(0, 2, []*rangemap.Table{first, second})
	require.NoError(t, err)

	merged, err := New(0, 2, []*rangemap.Table{first, second}, WithCoalesce(true))
	require.NoError(t, err)

	in := interval.Set{interval.New(60, 70), interval.New(65, 80), interval.New(80, 90)}

	a := plain.RunRanges(in)
	b := merged.RunRanges(in)

	m, _ := a.Min()
	n, _ := b.Min()
	assert.Equal(t, m, n)
	assert.Equal(t, a.Coalesce(), b.Coalesce())
	assert.Less(t, len(b), len(a))
}
