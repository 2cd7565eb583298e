// SPDX-License-Identifier: EPL-2.0

// Command audnorm converts one audio file to mono 16-bit PCM WAV.
//
//	audnorm [-o out.wav] [-duration 30] [-type audio/mpeg] [-passthrough-on-error] [-v] <input>
//
// Without -o the result is written next to the input as <name>.wav. Use
// -o - to write to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/ik5/audnorm"
)

var errUsage = errors.New("usage: audnorm [flags] <input>")

func main() {
	log.SetFlags(0)
	log.SetPrefix("audnorm: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("audnorm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	output := fs.String("o", "", "Output path, - for stdout (default: <input name>.wav next to the input)")
	duration := fs.String("duration", "", "Keep only the first N seconds (empty, zero or invalid keeps everything)")
	mediaType := fs.String("type", "", "Declared media type of the input (default: guessed from the extension)")
	passthrough := fs.Bool("passthrough-on-error", false, "Emit the input unchanged when it cannot be decoded")
	verbose := fs.Bool("v", false, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	logger := log.New(io.Discard, "audnorm: ", 0)
	if *verbose {
		logger.SetOutput(stderr)
	}

	inPath := fs.Arg(0)
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	in := audnorm.Input{
		Data:      data,
		Filename:  filepath.Base(inPath),
		MediaType: *mediaType,
	}
	if in.MediaType == "" {
		in.MediaType = mime.TypeByExtension(filepath.Ext(inPath))
	}
	logger.Printf("Loaded %s (%d bytes, type %q)", in.Filename, len(data), in.MediaType)

	opts := audnorm.DefaultOptions()
	opts.Duration = audnorm.ParseDuration(*duration)
	opts.PassthroughOnError = *passthrough

	out, err := audnorm.Convert(in, opts)
	if err != nil {
		return err
	}

	switch {
	case out.Fallback != nil:
		log.New(stderr, "audnorm: ", 0).Printf("warning: passing %s through unchanged: %v", in.Filename, out.Fallback)
	case out.Bypassed:
		logger.Printf("%s is already WAV, copying as is", in.Filename)
	default:
		logger.Printf("Converted %s to %s (%d bytes)", in.Filename, out.Filename, len(out.Data))
	}

	if *output == "-" {
		if _, err := stdout.Write(out.Data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	outPath := *output
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(inPath), out.Filename)
	}
	unchanged := out.Bypassed || out.Fallback != nil
	if unchanged && filepath.Clean(outPath) == filepath.Clean(inPath) {
		logger.Printf("%s is left in place", inPath)
		return nil
	}

	if err := os.WriteFile(outPath, out.Data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Printf("Wrote %s", outPath)

	return nil
}
