// Command gdnfetch mirrors the GIANTS Developer Network scripting
// documentation to a local directory of markdown files, plus a JSON
// manifest and a markdown index. Re-running resumes an interrupted
// mirror: pages already on disk are skipped.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gdndoc"
	"github.com/fwojciec/gdndoc/crawl"
	"github.com/fwojciec/gdndoc/fs"
	"github.com/fwojciec/gdndoc/goquery"
	"github.com/fwojciec/gdndoc/htmltomarkdown"
	gdnhttp "github.com/fwojciec/gdndoc/http"
	gdnslog "github.com/fwojciec/gdndoc/slog"
)

// DefaultSourceURL is the landing page of the FS25 scripting
// documentation.
const DefaultSourceURL = "https://gdn.giants-software.com/documentation_scripting_fs25.php"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
// Every flag defaults to the site's constants, so a bare invocation
// performs the standard mirror run.
type CLI struct {
	URL         string        `arg:"" optional:"" default:"${source_url}" help:"Documentation landing page URL"`
	Output      string        `short:"o" default:"output" help:"Output directory"`
	Delay       time.Duration `short:"d" default:"500ms" help:"Minimum delay between requests"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit (the request delay stays aggregate)"`
	Force       bool          `short:"f" help:"Rewrite pages even if their output file exists"`
	Verbose     bool          `short:"v" help:"Log every fetch"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gdnfetch"),
		kong.Description("Mirror the GIANTS Developer Network documentation to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"source_url": DefaultSourceURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// One limiter for the whole run: discovery and item fetches share
	// the same request budget.
	limiter := crawl.NewLimiter(cli.Delay)

	var fetcher gdndoc.Fetcher = gdnhttp.NewFetcher(limiter, gdnhttp.WithTimeout(cli.Timeout))
	if cli.Verbose {
		fetcher = gdnslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	discoverer, err := goquery.NewDiscoverer(cli.URL)
	if err != nil {
		return err
	}

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Discoverer:  discoverer,
		Extractor:   goquery.NewExtractor(),
		Converter:   htmltomarkdown.NewConverter(),
		Store:       fs.NewWriter(cli.Output, fs.WithForce(cli.Force)),
		Manifests:   fs.NewManifestStore(cli.Output),
		Logger:      logger,
		SourceURL:   cli.URL,
		Concurrency: cli.Concurrency,
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(stdout, "Discovered %d pages\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(stdout, "[%d/%d] %s\n", event.Completed, event.Total, crawl.TruncateURL(event.URL, 72))
		case crawl.ProgressSkipped:
			fmt.Fprintf(stdout, "[%d/%d] skip %s\n", event.Completed, event.Total, crawl.TruncateURL(event.URL, 67))
		case crawl.ProgressFailed:
			fmt.Fprintf(stdout, "[%d/%d] FAIL %s: %v\n", event.Completed, event.Total, crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := crawler.Run(ctx, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nDone: %d written (%s), %d skipped, %d failed\n",
		result.Written, crawl.FormatBytes(result.Bytes), result.Skipped, result.Failed)
	fmt.Fprintf(stdout, "Output: %s\n", cli.Output)

	return nil
}
