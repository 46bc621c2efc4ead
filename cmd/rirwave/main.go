// SPDX-License-Identifier: EPL-2.0

// Command rirwave renders the min/max envelope of an audio file as a
// PNG, using the same decode chain as the viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/capturelab/primview"
	"github.com/capturelab/primview/waveform"
)

const usageMessage = "usage: rirwave [-w width] [-h height] input.wav output.png"

var errUsage = errors.New("missing input/output argument")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usageMessage)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rirwave", flag.ContinueOnError)
	width := fs.Int("w", 640, "output width in pixels")
	height := fs.Int("h", 96, "output height in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return errUsage
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	set, err := primview.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := waveform.EncodePNG(f, set.Samples, *width, *height); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d samples at %d Hz (%.2fs) -> %s (%dx%d)\n",
		inPath, len(set.Samples), set.SampleRate, set.Duration().Seconds(),
		outPath, *width, *height)
	return nil
}
