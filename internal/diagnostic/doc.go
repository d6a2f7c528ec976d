// Package diagnostic collects structured errors, warnings and notes found
// while checking stage definition documents.
//
// Key capabilities:
//   - Every problem in a document is reported, not only the first one
//   - Each entry carries a stable code and the stage it concerns
//   - Errors can be folded into a single Go error for callers that only
//     need pass/fail
package diagnostic
