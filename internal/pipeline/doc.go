// Package pipeline chains rangemap tables into a path from an entry category
// to a terminal category and runs values or interval sets through it.
//
// A Pipeline is built once, either from tables that are already in order
// (New) or from stage definitions in any order (Assemble), and is validated
// at that point: the chain must be connected, start at the entry, end at the
// terminal and never revisit a category. Running is a fixed fold over the
// stages, so it always terminates after Len steps.
package pipeline
