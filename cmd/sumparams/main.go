// Command sumparams computes mineralogical summary parameters from a
// CSV of reflectance spectra.
//
// Usage:
//
//	sumparams [flags] [index-name ...]
//
// The spectra CSV holds one spectrum per row, one band per column. The
// wavelength CSV holds the matching wavelength grid as a single row or
// column. Without index names it computes every catalog entry.
//
// Examples:
//
//	sumparams -list
//	sumparams -spectra cube.csv -wavelengths wl.csv d2300
//	sumparams -spectra cube.csv -wavelengths wl.csv -denoise sharpen,median
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/langa1999/n2n4m/params"
	"github.com/langa1999/n2n4m/spectral/banddepth"
	"github.com/langa1999/n2n4m/spectral/cube"
	"github.com/langa1999/n2n4m/spectral/denoise"
)

func main() {
	spectraPath := flag.String("spectra", "", "CSV file of spectra, one spectrum per row")
	wavelengthPath := flag.String("wavelengths", "", "CSV file holding the wavelength grid")
	denoiseChain := flag.String("denoise", "", "comma-separated filters applied first: sharpen, median, mean")
	outPath := flag.String("o", "", "output CSV path (default stdout)")
	list := flag.Bool("list", false, "list available summary parameters")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sumparams [flags] [index-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Computes spectral summary parameters from CSV reflectance data.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sumparams -list\n")
		fmt.Fprintf(os.Stderr, "  sumparams -spectra cube.csv -wavelengths wl.csv d2300\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *spectraPath == "" || *wavelengthPath == "" {
		fmt.Fprintf(os.Stderr, "error: -spectra and -wavelengths are required\n")
		flag.Usage()
		os.Exit(2)
	}

	names := flag.Args()
	if len(names) == 0 {
		for name := range params.Catalog {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	if err := run(*spectraPath, *wavelengthPath, *denoiseChain, *outPath, names); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, 0, len(params.Catalog))
	for name := range params.Catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%-16s %s\n", name, params.Catalog[name].Description)
	}
}

func run(spectraPath, wavelengthPath, denoiseChain, outPath string, names []string) error {
	spectra, err := readMatrix(spectraPath)
	if err != nil {
		return fmt.Errorf("reading spectra: %w", err)
	}

	wavelengths, err := readVector(wavelengthPath)
	if err != nil {
		return fmt.Errorf("reading wavelengths: %w", err)
	}

	grid, err := banddepth.NewGrid(wavelengths)
	if err != nil {
		return err
	}

	if denoiseChain != "" {
		spectra, err = applyDenoise(spectra, denoiseChain)
		if err != nil {
			return err
		}
	}

	results := make([][]float64, len(names))
	for i, name := range names {
		def, ok := params.Catalog[name]
		if !ok {
			return fmt.Errorf("unknown summary parameter %q (use -list)", name)
		}

		results[i], err = def.Compute(spectra, grid)
		if err != nil {
			return err
		}
	}

	return writeResults(outPath, names, results)
}

// applyDenoise runs the requested filter chain. Each CSV row is treated
// as an independent pixel, so the matrix maps onto an n x 1 cube.
func applyDenoise(spectra cube.Matrix, chain string) (cube.Matrix, error) {
	c := make(cube.Cube, len(spectra))
	for i, s := range spectra {
		c[i] = [][]float64{s}
	}

	for _, name := range strings.Split(chain, ",") {
		switch strings.TrimSpace(name) {
		case "sharpen":
			c = denoise.SharpeningMedian(c)
		case "median":
			c = denoise.MovingMedian(c)
		case "mean":
			c = denoise.MovingMean(c)
		case "":
		default:
			return nil, fmt.Errorf("unknown denoise filter %q (want sharpen, median, or mean)", name)
		}
	}

	return c.Flatten(), nil
}

func readMatrix(path string) (cube.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	m := make(cube.Matrix, len(records))
	for i, record := range records {
		m[i] = make([]float64, len(record))
		for j, field := range record {
			m[i][j], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// readVector accepts the grid as a single CSV row or a single column.
func readVector(path string) ([]float64, error) {
	m, err := readMatrix(path)
	if err != nil {
		return nil, err
	}

	if len(m) == 1 {
		return m[0], nil
	}

	out := make([]float64, len(m))
	for i, row := range m {
		if len(row) != 1 {
			return nil, fmt.Errorf("wavelength file must be a single row or column")
		}

		out[i] = row[0]
	}

	return out, nil
}

func writeResults(outPath string, names []string, results [][]float64) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"spectrum"}, names...)); err != nil {
		return err
	}

	for i := range results[0] {
		record := make([]string, 0, len(names)+1)
		record = append(record, strconv.Itoa(i))
		for _, values := range results {
			record = append(record, strconv.FormatFloat(values[i], 'g', -1, 64))
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
