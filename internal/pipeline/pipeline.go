package pipeline

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rangefold/internal/rangemap"
)

// Stage is one named step of the chain.
type Stage struct {
	Name string
	Map  *rangemap.Map
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger receiving one debug entry per fold step.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithParallel composes contiguous runs of stages on up to limit goroutines
// before applying them to the seeds. limit <= 0 uses GOMAXPROCS.
func WithParallel(limit int) Option {
	return func(p *Pipeline) {
		if limit <= 0 {
			limit = runtime.GOMAXPROCS(0)
		}

		p.parallel = limit
	}
}

// Pipeline is an ordered chain of stages over one domain.
type Pipeline struct {
	domain   rangemap.Domain
	stages   []Stage
	log      logrus.FieldLogger
	parallel int
}

// New creates a pipeline applying stages in order.
func New(d rangemap.Domain, stages []Stage, opts ...Option) *Pipeline {
	p := &Pipeline{
		domain: d,
		stages: stages,
		log:    discardLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run returns the lowest value reachable from any seed value through all
// stages. It is the whole-map counterpart of Lowest for seed ranges.
func Run(d rangemap.Domain, seeds []rangemap.Interval, stages []*rangemap.Map) (rangemap.ID, error) {
	named := make([]Stage, 0, len(stages))
	for i, m := range stages {
		named = append(named, Stage{Name: fmt.Sprintf("stage %d", i+1), Map: m})
	}

	return New(d, named).Run(seeds)
}

// Run returns the lowest value reachable from any value of the seeds.
func (p *Pipeline) Run(seeds []rangemap.Interval) (rangemap.ID, error) {
	final, err := p.Fold(seeds)
	if err != nil {
		return 0, err
	}

	lowest, ok := final.MinDestination()
	if !ok {
		return 0, fmt.Errorf("%w: no seed value reaches the last stage", ErrEmptyPipeline)
	}

	p.log.WithField("lowest", lowest).Debug("pipeline done")

	return lowest, nil
}

// Fold returns the map sending every seed value to its final value.
func (p *Pipeline) Fold(seeds []rangemap.Interval) (*rangemap.Map, error) {
	if err := p.check(len(seeds)); err != nil {
		return nil, err
	}

	acc, err := rangemap.NewSeedMap(p.domain, seeds)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed map: %w", err)
	}

	if p.parallel > 0 {
		return p.foldParallel(acc)
	}

	for _, stage := range p.stages {
		next, err := acc.Then(stage.Map)
		if err != nil {
			return nil, fmt.Errorf("failed to apply stage %q: %w", stage.Name, err)
		}

		p.log.WithFields(logrus.Fields{
			"stage":       stage.Name,
			"stage_rules": stage.Map.Len(),
			"rules":       next.Len(),
		}).Debug("stage applied")

		acc = next
	}

	return acc, nil
}

// foldParallel splits the stages into at most p.parallel contiguous runs,
// composes every run on its own goroutine and then applies the runs to the
// seeds in order. Composition is associative, so the result equals the
// sequential fold.
func (p *Pipeline) foldParallel(seeds *rangemap.Map) (*rangemap.Map, error) {
	runs := splitStages(p.stages, p.parallel)
	parts := make([]*rangemap.Map, len(runs))

	var g errgroup.Group
	g.SetLimit(p.parallel)

	for i, run := range runs {
		g.Go(func() error {
			maps := make([]*rangemap.Map, 0, len(run))
			for _, stage := range run {
				maps = append(maps, stage.Map)
			}

			m, err := rangemap.ComposeAll(maps[0], maps[1:]...)
			if err != nil {
				return fmt.Errorf("failed to compose stages %q to %q: %w", run[0].Name, run[len(run)-1].Name, err)
			}

			p.log.WithFields(logrus.Fields{
				"first": run[0].Name,
				"last":  run[len(run)-1].Name,
				"rules": m.Len(),
			}).Debug("stages composed")

			parts[i] = m

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res, err := rangemap.ComposeAll(seeds, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to apply stages: %w", err)
	}

	return res, nil
}

// splitStages cuts stages into at most n contiguous non-empty runs of
// nearly equal length.
func splitStages(stages []Stage, n int) [][]Stage {
	n = max(1, min(n, len(stages)))
	res := make([][]Stage, 0, n)

	for i := range n {
		lo, hi := i*len(stages)/n, (i+1)*len(stages)/n
		res = append(res, stages[lo:hi])
	}

	return res
}

// Lowest pushes every value through the stages one at a time and returns the
// lowest result.
func (p *Pipeline) Lowest(values []rangemap.ID) (rangemap.ID, error) {
	if err := p.check(len(values)); err != nil {
		return 0, err
	}

	var lowest rangemap.ID

	for i, v := range values {
		out := v

		for _, stage := range p.stages {
			next, ok := stage.Map.Apply(out)
			if !ok {
				return 0, &rangemap.DomainOverflowError{
					Interval: rangemap.Interval{Start: out, End: out},
					Bound:    p.domain.Max,
					Reason:   fmt.Sprintf("value %d is not covered by stage %q", v, stage.Name),
				}
			}

			out = next
		}

		if i == 0 || out < lowest {
			lowest = out
		}
	}

	return lowest, nil
}

func (p *Pipeline) check(seeds int) error {
	if len(p.stages) == 0 {
		return &EmptyPipelineError{Missing: "stages"}
	}

	if seeds == 0 {
		return &EmptyPipelineError{Missing: "seeds"}
	}

	for _, stage := range p.stages {
		if stage.Map == nil {
			return fmt.Errorf("stage %q has no map", stage.Name)
		}
	}

	return nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
