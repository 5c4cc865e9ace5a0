// Package match finds known names close to a misspelled one.
//
// It is used to suggest the intended category when two chained stages do not
// agree ("soil-to-water" following "seed-to-sol").
package match
