package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/interval"
	"range-remapper/internal/rangemap"
)

// sampleDefs is the almanac sample, listed out of order on purpose.
func sampleDefs() []StageDef {
	return []StageDef{
		{From: "humidity", To: "location", Rules: []Triple{{60, 56, 37}, {56, 93, 4}}},
		{From: "seed", To: "soil", Rules: []Triple{{50, 98, 2}, {52, 50, 48}}},
		{From: "water", To: "light", Rules: []Triple{{88, 18, 7}, {18, 25, 70}}},
		{From: "soil", To: "fertilizer", Rules: []Triple{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
		{From: "temperature", To: "humidity", Rules: []Triple{{0, 69, 1}, {1, 0, 69}}},
		{From: "fertilizer", To: "water", Rules: []Triple{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
		{From: "light", To: "temperature", Rules: []Triple{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	}
}

func TestAssemble_Sample(t *testing.T) {
	p, err := Assemble(sampleDefs(), "seed", "location")
	require.NoError(t, err)

	require.Equal(t, 7, p.Len())

	var path []string
	for _, id := range p.Categories() {
		path = append(path, p.Name(id))
	}

	assert.Equal(t, []string{
		"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
	}, path)

	assert.Equal(t, uint64(82), p.RunPoint(79))
	assert.Equal(t, uint64(43), p.RunPoint(14))
	assert.Equal(t, uint64(86), p.RunPoint(55))
	assert.Equal(t, uint64(35), p.RunPoint(13))

	assert.Equal(t, []uint64{79, 81, 81, 81, 74, 78, 78, 82}, p.TracePoint(79))
	assert.Equal(t, []uint64{13, 13, 52, 41, 34, 34, 35, 35}, p.TracePoint(13))
}

func TestAssemble_SampleRanges(t *testing.T) {
	p, err := Assemble(sampleDefs(), "seed", "location")
	require.NoError(t, err)

	out := p.RunRanges(interval.Set{interval.New(79, 93), interval.New(55, 68)})

	assert.Equal(t, uint64(27), out.TotalLen())

	lowest, ok := out.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
}

func TestAssemble_UnknownCategory(t *testing.T) {
	_, err := Assemble(sampleDefs(), "seeds", "location")

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "seeds", unknown.Name)
	assert.Equal(t, "seed", unknown.Suggestion)
	assert.EqualError(t, err, `unknown category "seeds" (did you mean "seed"?)`)

	_, err = Assemble(sampleDefs(), "seed", "planet")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "planet", unknown.Name)
	assert.Empty(t, unknown.Suggestion)
	assert.EqualError(t, err, `unknown category "planet"`)
}

func TestAssemble_Cycle(t *testing.T) {
	defs := []StageDef{
		{From: "seed", To: "soil"},
		{From: "soil", To: "water"},
		{From: "water", To: "soil"},
		{From: "water", To: "location"},
	}

	_, err := Assemble(defs, "seed", "location")

	var cyc *CycleError
	require.ErrorAs(t, err, &cyc)
	assert.Contains(t, err.Error(), `"soil"`)
}

func TestAssemble_SelfLoop(t *testing.T) {
	defs := []StageDef{
		{From: "seed", To: "seed"},
	}

	_, err := Assemble(defs, "seed", "seed")

	var cyc *CycleError
	require.ErrorAs(t, err, &cyc)
}

func TestAssemble_Branching(t *testing.T) {
	defs := []StageDef{
		{From: "seed", To: "soil"},
		{From: "seed", To: "water"},
		{From: "soil", To: "location"},
	}

	_, err := Assemble(defs, "seed", "location")

	var disc *DisconnectedChainError
	require.ErrorAs(t, err, &disc)
	assert.Contains(t, err.Error(), `"seed"`)
}

func TestAssemble_UnusedStage(t *testing.T) {
	defs := append(sampleDefs(), StageDef{From: "moon", To: "cheese"})

	_, err := Assemble(defs, "seed", "location")

	var disc *DisconnectedChainError
	require.ErrorAs(t, err, &disc)
}

func TestAssemble_OverlappingRules(t *testing.T) {
	defs := []StageDef{
		{From: "seed", To: "soil", Rules: []Triple{{0, 10, 10}, {100, 15, 10}}},
	}

	_, err := Assemble(defs, "seed", "soil")

	var overlap *rangemap.OverlappingRuleError
	require.ErrorAs(t, err, &overlap)
	assert.Contains(t, err.Error(), "stage seed-to-soil")
}

func TestAssemble_BadRule(t *testing.T) {
	defs := []StageDef{
		{From: "seed", To: "soil", Rules: []Triple{{0, 10, 10}, {1 << 63, 0, 1}}},
	}

	_, err := Assemble(defs, "seed", "soil")

	var overflow *rangemap.OffsetOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Contains(t, err.Error(), "rule 1")
}

func TestAssemble_KeepsCallerOptions(t *testing.T) {
	p, err := Assemble(sampleDefs(), "seed", "location", WithCoalesce(true))
	require.NoError(t, err)

	out := p.RunRanges(interval.Set{interval.New(79, 93), interval.New(55, 68)})

	lowest, ok := out.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
	assert.NotNil(t, p.Names())
}
