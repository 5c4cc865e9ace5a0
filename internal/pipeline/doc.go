// Package pipeline pushes seed ranges through a chain of stage maps.
//
// The seed intervals become a seed map (rangemap.NewSeedMap) which is then
// composed with every stage in order:
//
//	acc := seeds
//	for _, stage := range stages {
//	    acc = acc.Then(stage)
//	}
//
// The final map sends every seed value to its output value, so the lowest
// reachable output is the lowest destination start of its rules. No value
// is ever enumerated.
//
// Lowest covers the simpler case of individual seed values, which are looked
// up stage by stage.
package pipeline
