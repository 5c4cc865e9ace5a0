package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"rangefold/internal/almanac"
	"rangefold/internal/diagnostic"
	"rangefold/internal/pipeline"
)

// almanacSource is the input file shared by the commands.
type almanacSource struct {
	Path   string `arg:"" help:"Almanac file" type:"existingfile"`
	Format string `help:"Almanac format (auto, text or yaml)" enum:"auto,text,yaml" default:"auto"`
}

func (s *almanacSource) load() (*almanac.Almanac, error) {
	format, err := almanac.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}

	return almanac.LoadFile(s.Path, format)
}

// LowestCmd prints the lowest final value.
type LowestCmd struct {
	Input almanacSource `embed:""`

	Single bool `help:"Read the seeds as single values instead of start/length pairs"`
}

func (c *LowestCmd) Run(a *app) error {
	alm, p, err := a.pipeline(&c.Input, seedMode(c.Single))
	if err != nil {
		return err
	}

	var lowest int64

	if c.Single {
		lowest, err = p.Lowest(alm.SeedValues())
	} else {
		seeds, serr := alm.SeedIntervals()
		if serr != nil {
			return serr
		}

		lowest, err = p.Run(seeds)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, lowest)

	return nil
}

// FoldCmd prints the composed map.
type FoldCmd struct {
	Input almanacSource `embed:""`

	ByDestination bool `name:"by-destination" help:"Order the rules by destination start"`
}

func (c *FoldCmd) Run(a *app) error {
	alm, p, err := a.pipeline(&c.Input, almanac.ModeRanges)
	if err != nil {
		return err
	}

	seeds, err := alm.SeedIntervals()
	if err != nil {
		return err
	}

	m, err := p.Fold(seeds)
	if err != nil {
		return err
	}

	rules := m.Rules()
	if c.ByDestination {
		rules = m.ByDestination()
	}

	for _, r := range rules {
		fmt.Fprintln(a.out, r)
	}

	return nil
}

// CheckCmd validates an almanac and prints every diagnostic.
type CheckCmd struct {
	Input almanacSource `embed:""`

	Single      bool   `help:"Check the seeds as single values instead of start/length pairs"`
	MinSeverity string `name:"min-severity" help:"Lowest severity printed (info, warning or error)" enum:"info,warning,error" default:"info"`
}

func (c *CheckCmd) Run(a *app) error {
	lowest, err := diagnostic.ParseSeverity(c.MinSeverity)
	if err != nil {
		return err
	}

	alm, err := c.Input.load()
	if err != nil {
		return err
	}

	res := almanac.Validate(alm, a.cfg.Domain(), seedMode(c.Single))
	for _, d := range res.AtLeast(lowest) {
		fmt.Fprintf(a.out, "%s: %s\n", d.Severity, d)
	}

	if res.HasErrors() {
		return fmt.Errorf("%s: %d errors", c.Input.Path, len(res.Errors))
	}

	fmt.Fprintf(a.out, "%s: ok (%d stages, %d warnings)\n", c.Input.Path, len(alm.Stages), len(res.Warnings))

	return nil
}

// ConvertCmd rewrites an almanac in another format.
type ConvertCmd struct {
	Input almanacSource `embed:""`

	To  string `help:"Output format" enum:"text,yaml" required:""`
	Out string `help:"Output file, stdout when empty" type:"path"`
}

func (c *ConvertCmd) Run(a *app) error {
	alm, err := c.Input.load()
	if err != nil {
		return err
	}

	to, err := almanac.ParseFormat(c.To)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := almanac.WriteFile(alm, c.Out, to); err != nil {
			return err
		}

		a.log.WithFields(logrus.Fields{
			"from": c.Input.Path,
			"to":   c.Out,
		}).Info("almanac converted")

		return nil
	}

	data, err := almanac.Marshal(alm, to)
	if err != nil {
		return err
	}

	_, err = a.out.Write(data)

	return err
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "rangefold version %s\n", version)
	return nil
}

func seedMode(single bool) almanac.SeedMode {
	if single {
		return almanac.ModeValues
	}

	return almanac.ModeRanges
}

// pipeline loads an almanac, validates it with its seeds read as mode says
// and builds its stage pipeline.
func (a *app) pipeline(src *almanacSource, mode almanac.SeedMode) (*almanac.Almanac, *pipeline.Pipeline, error) {
	alm, err := src.load()
	if err != nil {
		return nil, nil, err
	}

	res := almanac.Validate(alm, a.cfg.Domain(), mode)
	a.logDiagnostics(res)

	if err := res.Error(); err != nil {
		return nil, nil, fmt.Errorf("invalid almanac %s: %w", src.Path, err)
	}

	stages, err := alm.BuildStages(a.cfg.Domain())
	if err != nil {
		return nil, nil, err
	}

	opts := []pipeline.Option{pipeline.WithLogger(a.log)}
	if a.cfg.Parallel {
		opts = append(opts, pipeline.WithParallel(a.cfg.Workers))
	}

	return alm, pipeline.New(a.cfg.Domain(), stages, opts...), nil
}

func (a *app) logDiagnostics(res *diagnostic.Diagnostics) {
	for _, d := range res.Warnings {
		a.log.WithField("code", d.Code).Warn(d.String())
	}

	for _, d := range res.Infos {
		a.log.WithField("code", d.Code).Info(d.String())
	}
}
