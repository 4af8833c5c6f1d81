// Package main provides the Cyron CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cyron-ml/cyron/internal/serialization"
	"github.com/cyron-ml/cyron/nn"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("cyron: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "version":
		fmt.Printf("Cyron %s\n", version)
	case "init":
		err = runInit(os.Stdout, args)
	case "forward":
		err = runForward(os.Stdout, args)
	case "history":
		err = runHistory(os.Stdout, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("Cyron - feedforward inference with versioned weight checkpoints")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  init       Build a random network and save it (appends a version if the file exists)")
	fmt.Println("  forward    Load a network version and run one input through it")
	fmt.Println("  history    Show the layers and saved versions of a weights file")
}

func runInit(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	file := fs.String("file", "weights.json", "weights file")
	layers := fs.String("layers", "", `layer list, e.g. "3:4:relu,4:2:softmax"`)
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	specs, err := parseLayers(*layers)
	if err != nil {
		return err
	}

	var opts []nn.Option
	if *seed != 0 {
		opts = append(opts, nn.WithSeed(*seed))
	}
	net := nn.NewNetwork(opts...)
	for _, s := range specs {
		if err := net.AddLayer(s.in, s.out, s.act); err != nil {
			return err
		}
	}

	if err := net.Save(*file); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %d layers to %s\n", net.Len(), *file)
	return nil
}

func runForward(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("forward", flag.ContinueOnError)
	file := fs.String("file", "weights.json", "weights file")
	ver := fs.Int("version", nn.Latest, "version to load (-1 = latest)")
	input := fs.String("input", "", `comma separated input, e.g. "0.1,0.2,0.3"`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	vec, err := parseVector(*input)
	if err != nil {
		return err
	}

	net := nn.NewNetwork()
	if err := net.LoadVersion(*file, *ver); err != nil {
		return err
	}

	out, err := net.Forward(vec)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatVector(out))
	return nil
}

func runHistory(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	file := fs.String("file", "weights.json", "weights file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := serialization.ReadFile(*file)
	if err != nil {
		return err
	}

	for i, rec := range f {
		fmt.Fprintf(w, "layer %d: %d -> %d %s", i, rec.InputSize, len(rec.WeightsHistory), rec.Activation)
		if !nn.Activation(rec.Activation).Known() {
			fmt.Fprint(w, " (unknown activation, values pass through)")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "versions: 0..%d\n", serialization.Versions(f))
	return nil
}

type layerSpec struct {
	in, out int
	act     nn.Activation
}

// parseLayers parses "in:out[:activation],..." into layer specs.
func parseLayers(s string) ([]layerSpec, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no layers given")
	}

	var specs []layerSpec
	for _, part := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("invalid layer %q: want in:out[:activation]", part)
		}

		in, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid input size in %q: %w", part, err)
		}
		out, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid output size in %q: %w", part, err)
		}

		spec := layerSpec{in: in, out: out}
		if len(fields) == 3 {
			spec.act = nn.Activation(fields[2])
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// parseVector parses a comma separated list of floats.
func parseVector(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}

	parts := strings.Split(s, ",")
	vec := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", p, err)
		}
		vec[i] = v
	}
	return vec, nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	return strings.Join(parts, ",")
}
