// Package match provides name normalization, Levenshtein similarity and
// candidate ranking used to suggest a known category when a name is
// misspelled.
//
// Key functions:
//   - Normalize: folds a category name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders known names by similarity to a target
//   - Suggest: returns the single convincing candidate, if any
package match
