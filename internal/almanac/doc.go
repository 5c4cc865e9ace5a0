// Package almanac loads, checks and converts the inputs of a range folding
// run: a list of seed numbers and a chain of stages, each a list of
// (destination start, source start, length) rules.
//
// # Text format
//
// The native format is the puzzle almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//	...
//
// Every stage starts with a "<from>-to-<to> map:" header followed by its
// rules, one "destination source length" triple per line.
//
// # YAML format
//
// The same content as YAML:
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - [50, 98, 2]
//	      - {dest: 52, src: 50, len: 48}
//
// A rule is either a [destination, source, length] sequence or a mapping
// with dest, src and len keys.
//
// # Seeds
//
// Seed numbers are read either as (start, length) pairs describing ranges
// (SeedIntervals) or as individual values (SeedValues).
//
// # Checking
//
// Validate reports every problem of an almanac at once as diagnostics
// (empty stages, non-positive lengths, overlapping rule sources, values
// outside the domain, stages whose categories do not chain). The SeedMode
// decides whether the seeds are checked as ranges or as single values.
// BuildStages builds the total stage maps and fails on the first problem.
package almanac
