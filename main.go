package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strconv"

	"github.com/55utah/yane/logger"
	"github.com/55utah/yane/nes"
	"github.com/55utah/yane/statsview"
	"github.com/55utah/yane/ui"
)

func main() {
	var scale int
	var trace string
	var startPC string
	var frames int
	var seconds float64
	var output string
	var patterns string
	var stats bool
	var verbose bool

	flag.IntVar(&scale, "scale", 2, "Window scale")
	flag.StringVar(&trace, "trace", "", "Write a nestest style CPU trace to file")
	flag.StringVar(&startPC, "pc", "", "Start at this hex address instead of the reset vector (C000 for nestest)")
	flag.IntVar(&frames, "frames", 0, "Run headless for n frames")
	flag.Float64Var(&seconds, "seconds", 0, "Run headless for this much emulated time")
	flag.StringVar(&output, "o", "", "PNG of the last frame of a headless run")
	flag.StringVar(&patterns, "patterns", "", "PNG dump of the pattern tables")
	flag.BoolVar(&stats, "statsview", false, "Serve runtime statistics over HTTP")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [flags] rom.nes", os.Args[0])
	}
	romPath := flag.Arg(0)

	if verbose {
		logger.SetEcho(os.Stderr)
	}
	if stats {
		statsview.Launch(os.Stderr)
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		log.Fatalf("%v: %v", romPath, err)
	}

	var options []nes.Option
	if startPC != "" {
		pc, err := strconv.ParseUint(startPC, 16, 16)
		if err != nil {
			log.Fatalf("-pc %v: %v", startPC, err)
		}
		options = append(options, nes.WithStartPC(uint16(pc)))
	}
	if trace != "" {
		ouf, err := os.Create(trace)
		if err != nil {
			log.Fatalf("%v: %v", trace, err)
		}
		defer ouf.Close()
		w := bufio.NewWriter(ouf)
		defer w.Flush()
		options = append(options, nes.WithTrace(w))
	}

	console, err := nes.NewConsole(data, options...)
	if err != nil {
		log.Fatalf("%v: %v", romPath, err)
	}

	if frames > 0 || seconds > 0 {
		err = runHeadless(console, frames, seconds, output)
	} else {
		err = ui.OpenWindow(console, scale)
	}
	if err != nil {
		log.Printf("%v: %v", romPath, err)
	}

	if patterns != "" {
		if err := writePNG(patterns, console.PatternTables()); err != nil {
			log.Fatalf("%v: %v", patterns, err)
		}
	}
}

// runHeadless steps the console for n frames, then for the given emulated
// seconds, and reports the blargg test status when the ROM publishes one.
func runHeadless(console *nes.Console, n int, seconds float64, output string) error {
	for i := 0; i < n; i++ {
		if _, err := console.StepFrame(); err != nil {
			return err
		}
	}
	if seconds > 0 {
		if err := console.StepSeconds(seconds); err != nil {
			return err
		}
	}

	if status, ok := nes.TestStatus(console.Bus); ok {
		fmt.Printf("test status 0x%02X: %s\n", status.Code, status.Text)
	}

	if output != "" {
		return writePNG(output, console.Buffer())
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	ouf, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(ouf, img); err != nil {
		ouf.Close()
		return err
	}
	return ouf.Close()
}
