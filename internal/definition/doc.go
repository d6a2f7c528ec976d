// Package definition loads, checks and writes stage definition documents.
//
// Two formats are understood. The almanac text format is the puzzle input
// layout:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each rule line is "dest source length". The YAML format carries the same
// information with explicit entry and terminal categories and separate point
// and range seeds:
//
//	version: "1"
//	entry: seed
//	terminal: location
//	stages:
//	  - from: seed
//	    to: soil
//	    ranges:
//	      - [50, 98, 2]                        # dest, source, length
//	      - {dest: 52, source: 50, length: 48}
//	seeds:
//	  points: [79, 14, 55, 13]
//	  ranges:
//	    - {start: 79, length: 14}
//
// # Validation
//
// Validate reports every problem of a document as diagnostics instead of
// stopping at the first one. Build turns a document into a pipeline; it
// fails with the typed pipeline and rangemap errors on invalid input.
package definition
