package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/esimov/pixfilter"
	"github.com/esimov/pixfilter/utils"
	"golang.org/x/sync/errgroup"
)

// Supported image file extensions in directory mode.
var extensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".webp"}

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	destination = flag.String("out", "", "Destination image or directory")
	filters     = flag.String("filter", "grayscale", "Comma separated list of filters")
	threshold   = flag.Int("threshold", -1, "Filter threshold (0-255, negative for the filter default)")
	grayMode    = flag.String("gray", "luminance", "Grayscale mode: luminance or average")
	backendName = flag.String("backend", "sequential", "Execution backend: sequential or parallel")
	workers     = flag.Int("workers", 0, "Number of workers used by the parallel backend and directory mode (0 means GOMAXPROCS)")
	compare     = flag.Bool("compare", false, "Render the source and the result side by side")
	list        = flag.Bool("list", false, "List the supported filters")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	if *list {
		printCatalog()
		return
	}
	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal("Usage: pixfilter -in input.jpg -out out.png -filter grayscale,sobel")
	}
	if *verbose {
		pixfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p, err := newProcessor()
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	n, err := run(context.Background(), p, *source, *destination, fileWorkers(*workers))
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.Decorate(os.Stderr, "Error filtering image: "+err.Error(), utils.ErrorColor))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Filtered %d image(s) in %s %s\n",
		n, utils.FormatTime(time.Since(start)), utils.Decorate(os.Stderr, "✓", utils.SuccessColor))
}

// run filters the source file, directory or URL into dst and returns the number of processed images.
// A downloaded source is removed before returning.
func run(ctx context.Context, p *pixfilter.Processor, src, dst string, workers int) (int, error) {
	if utils.IsURL(src) {
		f, err := utils.DownloadImage(ctx, src)
		if err != nil {
			return 0, err
		}
		defer os.Remove(f.Name())
		f.Close()
		src = f.Name()
	}

	toProcess, err := collect(src, dst)
	if err != nil {
		return 0, err
	}

	var spinner *utils.Spinner
	if utils.IsTerminal(os.Stderr) {
		spinner = utils.NewSpinner(os.Stderr)
		spinner.Start(fmt.Sprintf("Applying %s...", p.Chain))
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for in, out := range toProcess {
		in, out := in, out
		g.Go(func() error {
			return processFile(p, in, out)
		})
	}
	err = g.Wait()

	if spinner != nil {
		spinner.Stop()
	}
	return len(toProcess), err
}

// fileWorkers returns how many files are filtered at once.
// Like the parallel backend, a non positive value means runtime.GOMAXPROCS(0).
func fileWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// newProcessor builds the processor from the command line flags.
func newProcessor() (*pixfilter.Processor, error) {
	mode, ok := pixfilter.ParseGrayscaleMode(*grayMode)
	if !ok {
		return nil, fmt.Errorf("unsupported grayscale mode %q", *grayMode)
	}
	params := pixfilter.Params{Mode: mode}
	if *threshold >= 0 {
		params.Threshold = pixfilter.Threshold(*threshold)
	}

	chain, err := pixfilter.ParseChain(*filters, params)
	if err != nil {
		return nil, err
	}
	backend, ok := pixfilter.ParseBackend(*backendName, *workers)
	if !ok {
		return nil, fmt.Errorf("unsupported backend %q", *backendName)
	}
	return &pixfilter.Processor{
		Chain:   chain,
		Backend: backend,
		Compare: *compare,
	}, nil
}

// collect maps every source image to its destination file.
func collect(src, dst string) (map[string]string, error) {
	fs, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	toProcess := make(map[string]string)

	if fs.Mode().IsRegular() {
		toProcess[src] = dst
		return toProcess, nil
	}
	if !fs.IsDir() {
		return nil, errors.New("source must be a regular file or a directory")
	}

	// Check if the image destination is a directory.
	ds, err := os.Stat(dst)
	if err != nil {
		return nil, fmt.Errorf("unable to get dir stats: %w", err)
	}
	if !ds.IsDir() {
		return nil, errors.New("please specify a directory as destination")
	}

	files, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read dir: %w", err)
	}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name()))
		for _, iex := range extensions {
			if ext == iex && !f.IsDir() {
				name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
				toProcess[filepath.Join(src, f.Name())] = filepath.Join(dst, name+".png")
			}
		}
	}
	return toProcess, nil
}

// processFile filters a single source file into dst.
func processFile(p *pixfilter.Processor, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer out.Close()

	if _, err := p.Process(in, out); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(src), err)
	}
	return nil
}

func printCatalog() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTHRESHOLD\tGRAYSCALE")
	for _, f := range pixfilter.Catalog() {
		th := "-"
		if f.WithThreshold {
			th = fmt.Sprintf("%d-%d (default %d)", f.MinThreshold, f.MaxThreshold, f.DefaultThreshold)
		}
		gray := "-"
		if f.IsGrayscale {
			gray = f.DefaultGrayscaleMode.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, f.Name, th, gray)
	}
	w.Flush()
}
