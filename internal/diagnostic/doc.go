// Package diagnostic provides structured errors, warnings and notes produced
// while checking almanac input, before any map is built.
//
// Key capabilities:
//   - Every problem of an input is reported at once, each with a stable code
//   - Problems point at a stage and a location inside it ("rule 3", "seeds")
//   - Name mismatches between chained stages carry suggestions
package diagnostic
