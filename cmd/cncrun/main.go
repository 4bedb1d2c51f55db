package main

import (
	"fmt"
	"os"
	"time"

	"github.com/chrisns/snapmaker-cnc-motion/internal/config"
	"github.com/chrisns/snapmaker-cnc-motion/internal/controller"
	"github.com/chrisns/snapmaker-cnc-motion/internal/executor"
	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodestream"
	"github.com/chrisns/snapmaker-cnc-motion/internal/interp"
	"github.com/chrisns/snapmaker-cnc-motion/internal/prescan"
	"github.com/chrisns/snapmaker-cnc-motion/internal/progress"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: cncrun <file.gcode> [config.yml]")
		return 1
	}
	inputPath := args[0]
	confPath := "cncrun.yml"
	if len(args) > 1 {
		confPath = args[1]
	}

	cfg, err := config.Load(confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		return 1
	}

	prescanFile, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening %s: %v\n", inputPath, err)
		return 1
	}
	result, err := prescan.Run(prescanFile, cfg.Interp)
	prescanFile.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during prescan: %v\n", err)
		return 1
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	fmt.Printf("prescan: %s lines, %s primitives, %.1fmm\n",
		formatNumber(result.LineCount), formatNumber(result.PrimitiveCount), result.TotalLengthMM)

	runFile, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reopening %s: %v\n", inputPath, err)
		return 1
	}
	defer runFile.Close()

	var exec executor.Executor
	if cfg.Simulate {
		exec = executor.NewSimulated()
	} else {
		s, err := executor.NewSerial(cfg.Serial)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening executor: %v\n", err)
			return 1
		}
		exec = s
	}
	defer exec.Close()

	if cfg.EchoPath != "" {
		echoFile, err := os.Create(cfg.EchoPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening echo file %s: %v\n", cfg.EchoPath, err)
			return 1
		}
		defer echoFile.Close()
		exec = executor.NewEcho(exec, gcodestream.NewBufferedWriter(echoFile))
	}

	stream := gcodestream.New(runFile)
	ip := interp.New(cfg.Interp)
	ctrl := controller.New(stream, ip, exec, cfg.Controller, cfg.Limits, result.TotalLengthMM)

	if err := ctrl.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error starting: %v\n", err)
		return 1
	}

	reporter := progress.NewReporter()
	budget := controller.Budget{MaxLines: 16, MaxSteps: 8}

	for ctrl.State() == controller.Running || ctrl.State() == controller.Hold {
		ctrl.Pump(budget)
		for _, ev := range ctrl.Drain() {
			printEvent(ev, reporter, result.PrimitiveCount)
		}
		if ctrl.State() == controller.Running || ctrl.State() == controller.Hold {
			time.Sleep(10 * time.Millisecond)
		}
	}

	if err := exec.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error flushing executor: %v\n", err)
		return 1
	}

	if ctrl.State() == controller.Cancelled {
		fmt.Fprintln(os.Stderr, "run cancelled")
		return 1
	}

	elapsed := time.Since(reporter.StartedAt())
	reporter.Finish(progress.Snapshot{
		ExecutedLengthMM: ctrl.CompletedLengthMM(),
		TotalLengthMM:    result.TotalLengthMM,
		PrimitivesDone:   ctrl.PrimitivesExecuted(),
		PrimitivesTotal:  result.PrimitiveCount,
		Elapsed:          elapsed,
	})
	fmt.Printf("%s primitives executed in %s\n", formatNumber(ctrl.PrimitivesExecuted()), formatDuration(elapsed))
	return 0
}

func printEvent(ev controller.Event, reporter *progress.Reporter, primitivesTotal int) {
	switch e := ev.(type) {
	case controller.ProgressEvent:
		reporter.Update(progress.Snapshot{
			ExecutedLengthMM: e.CompletedLengthMM,
			TotalLengthMM:    e.TotalLengthMM,
			PrimitivesTotal:  primitivesTotal,
			Elapsed:          time.Since(reporter.StartedAt()),
		})
	case controller.StateChangeEvent:
		fmt.Fprintf(os.Stderr, "\n%s -> %s\n", e.From, e.To)
	case controller.ErrorEvent:
		fmt.Fprintf(os.Stderr, "\nerror: %v\n", e.Err)
	case controller.CompletionEvent:
		fmt.Printf("\ncomplete: %.1fmm\n", e.CompletedLengthMM)
	}
}
