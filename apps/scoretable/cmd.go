package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/trezcool/scoretable/core"
	"github.com/trezcool/scoretable/core/gradebook"
	"github.com/trezcool/scoretable/core/input"
	"github.com/trezcool/scoretable/core/report"
	"github.com/trezcool/scoretable/services/console"
	"github.com/trezcool/scoretable/services/render"
)

var (
	isTerminalFunc        = consolesvc.IsTerminal // mockable
	newTerminalReaderFunc = consolesvc.NewTerminalReader

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	log    core.Logger
	stdin  io.Reader
	stdout io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintln(cli.stdout, "  scoretable - enter students' scores, then print the score and statistics tables")
	fmt.Fprintln(cli.stdout, "  scoretable help - show this message")
}

func (cli *commandLine) run(args []string) error {
	if len(args) > 1 {
		cli.printUsage()
		return errHelp
	}
	return cli.scoreTable()
}

// scoreTable builds the dataset interactively, then renders both reports.
// Nothing is rendered when the input ends early.
func (cli *commandLine) scoreTable() error {
	rdr, diag, closeRdr, err := cli.lineReader()
	if err != nil {
		return err
	}

	acq := input.NewAcquirer(rdr, diag, cli.log)
	builder := gradebook.NewBuilder(acq, gradebook.BuilderConfig{
		DefaultCount:    cli.conf.Scores.DefaultCount,
		DefaultSubjects: cli.conf.Scores.DefaultSubjects,
	}, cli.log)
	ds, err := builder.Build()
	if cerr := closeRdr(); cerr != nil {
		cli.log.Warn("restoring terminal", cerr)
	}
	if err != nil {
		return err
	}
	cli.log.Debug("dataset built", map[string]interface{}{"students": len(ds.Students), "subjects": ds.Subjects})

	st := gradebook.Compute(ds)

	renderer, err := rendersvc.New(cli.conf.Report.Renderer, cli.stdout)
	if err != nil {
		return err
	}
	return report.NewFormatter(renderer).Render(ds, st)
}

// lineReader uses the terminal line editor on an interactive stdin, a plain scanner otherwise.
// diag receives the rejection diagnostics.
func (cli *commandLine) lineReader() (rdr input.LineReader, diag io.Writer, closeFn func() error, err error) {
	if f, ok := cli.stdin.(*os.File); ok && cli.conf.Input.Terminal && isTerminalFunc(f) {
		trdr, err := newTerminalReaderFunc(f, cli.stdout)
		if err != nil {
			return nil, nil, nil, err
		}
		return trdr, trdr, trdr.Close, nil
	}
	return consolesvc.NewScannerReader(cli.stdin, cli.stdout), cli.stdout, func() error { return nil }, nil
}
