// Package main is the Osusume CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/osusume/internal/catalog"
	"github.com/hyperjump/osusume/internal/cli"
	"github.com/hyperjump/osusume/internal/config"
	"github.com/hyperjump/osusume/internal/eligibility"
	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/recommend"
	"github.com/hyperjump/osusume/internal/server"
	"github.com/hyperjump/osusume/internal/watcher"
	"github.com/hyperjump/osusume/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/osusume/config.yaml"

// loadConfig loads config from path. When path is the default, it first
// looks for config.yaml in the current directory (for development); if
// that exists it is used. Returns the config and the path that was
// actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "recommend":
		runRecommend()
	case "keywords":
		runKeywords()
	case "verify":
		runVerify()
	case "version", "--version", "-v":
		fmt.Printf("osusume version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: osusume <command> [flags]

Commands:
  server      start the HTTP API server
  search      find catalog records matching free text (phase one)
  recommend   recommend records similar to a given record
  keywords    recommend records matching free text / selected keywords
  verify      check certificate eligibility from a submission-flag CSV
  version     print version
  help        print this help
`)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	engine := newEngine(cfg, logger)
	src, err := catalog.Open(cfg.Catalog.Path, cfg.Catalog.GraphKey)
	if err != nil {
		logger.Fatal("Failed to open catalog", zap.Error(err))
	}
	if _, err := engine.LoadCatalog(src); err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	var watchSvc *watcher.Watcher
	if cfg.Catalog.Watch {
		watchSvc = watcher.New(cfg.Catalog.Path, func() {
			if _, err := engine.LoadCatalog(src); err != nil {
				logger.Warn("catalog reload failed", zap.Error(err))
			}
		}, logger)
		if err := watchSvc.Start(); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer watchSvc.Stop()
	}

	srv := server.NewServer(engine, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 0, "max candidates (default from config)")
	jsonOut := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(os.Args[2:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Println("Usage: osusume search [flags] <query>")
		os.Exit(1)
	}

	cfg, engine, snap := oneShotSnapshot(*configPath)
	if *limit <= 0 {
		*limit = cfg.Search.CandidateLimit
	}
	candidates, err := engine.Search(snap.ID, query, *limit)
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		os.Exit(1)
	}
	_ = cli.WriteCandidates(os.Stdout, candidates, outputFormat(*jsonOut))
}

func runRecommend() {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	topN := fs.Int("top", 0, "number of results (default from config)")
	jsonOut := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Println("Usage: osusume recommend [flags] <record-index>")
		fmt.Println("Record indices come from `osusume search`.")
		os.Exit(1)
	}
	record, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Printf("Invalid record index %q\n", fs.Arg(0))
		os.Exit(1)
	}

	cfg, engine, snap := oneShotSnapshot(*configPath)
	results, err := engine.RecommendByRecord(snap.ID, models.RecommendRequest{
		Record:  record,
		Profile: cfg.Ranking.Profile(),
		TopN:    *topN,
	})
	if err != nil {
		fmt.Printf("Recommendation failed: %v\n", err)
		os.Exit(1)
	}
	_ = cli.WriteResults(os.Stdout, results, snap.Set.Records, outputFormat(*jsonOut))
}

func runKeywords() {
	fs := flag.NewFlagSet("keywords", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	topN := fs.Int("top", 0, "number of results (default from config)")
	picked := fs.String("picked", "", "comma-separated selected keywords")
	jsonOut := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(os.Args[2:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	var keywords []string
	for _, k := range strings.Split(*picked, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if query == "" && len(keywords) == 0 {
		fmt.Println("Usage: osusume keywords [flags] <query>")
		os.Exit(1)
	}

	cfg, engine, snap := oneShotSnapshot(*configPath)
	results, err := engine.RecommendByKeywords(snap.ID, models.RecommendRequest{
		Query:    query,
		Keywords: keywords,
		Profile:  cfg.Ranking.Profile(),
		TopN:     *topN,
	})
	if err != nil {
		fmt.Printf("Recommendation failed: %v\n", err)
		os.Exit(1)
	}
	_ = cli.WriteResults(os.Stdout, results, snap.Set.Records, outputFormat(*jsonOut))
}

func runVerify() {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	csvPath := fs.String("csv", "", "submission-flag CSV path")
	birth := fs.String("birth", "", "6-digit birth date (YYMMDD)")
	yearsArg := fs.String("years", "", "comma-separated years to check (default: all in file)")
	reportable := fs.Bool("reportable", false, "person is income-report liable")
	_ = fs.Parse(os.Args[2:])

	if *csvPath == "" || *birth == "" {
		fmt.Println("Usage: osusume verify -csv <file> -birth <YYMMDD> [-years 2023,2024] [-reportable]")
		os.Exit(1)
	}
	if len(*birth) != 6 {
		fmt.Println("Birth date must be 6 digits (YYMMDD)")
		os.Exit(1)
	}

	table, err := eligibility.LoadCSV(*csvPath)
	if err != nil {
		fmt.Printf("Failed to load flag table: %v\n", err)
		os.Exit(1)
	}
	years := table.Years()
	if *yearsArg != "" {
		years = years[:0]
		for _, y := range strings.Split(*yearsArg, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(y))
			if err != nil {
				fmt.Printf("Invalid year %q\n", y)
				os.Exit(1)
			}
			years = append(years, n)
		}
	}
	if len(years) == 0 {
		fmt.Println("No years to check (none selected, none in file)")
		os.Exit(1)
	}

	row := table.FindRow(*birth)
	if row == nil {
		fmt.Println("No matching record for that birth date.")
		os.Exit(1)
	}
	in, verdict := table.Evaluate(row, years, *reportable)

	fmt.Printf("Result: %s\n", verdict)
	for _, y := range years {
		fmt.Printf("  %d: submitted=%v\n", y, in.Submissions[y])
	}
	if in.SpecialYCount > 0 {
		fmt.Printf("  special-category marks: %d\n", in.SpecialYCount)
	}
}

// oneShotSnapshot runs the load→normalize→filter→fit pipeline once for a
// CLI query, using the configured filter and facets.
func oneShotSnapshot(configPath string) (*config.Config, *recommend.Engine, *recommend.Snapshot) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := zap.NewNop()
	if cfg.Debug {
		if l, lerr := utils.NewLogger(true); lerr == nil {
			logger = l
		}
	}

	engine := newEngine(cfg, logger)
	src, err := catalog.Open(cfg.Catalog.Path, cfg.Catalog.GraphKey)
	if err != nil {
		fmt.Printf("Failed to open catalog: %v\n", err)
		os.Exit(1)
	}
	n, err := engine.LoadCatalog(src)
	if err != nil {
		fmt.Printf("Failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	if n == 0 {
		fmt.Println("No records found in catalog.")
		os.Exit(1)
	}

	snap, err := engine.Snapshot(cfg.Filter.PageRange(), cfg.Filter.IncludeMissingPages, cfg.Ranking.Facets)
	if err != nil {
		fmt.Printf("Failed to build index: %v\n", err)
		os.Exit(1)
	}
	if snap.Set.Empty() {
		fmt.Println("No records pass the configured filter.")
		os.Exit(1)
	}
	return cfg, engine, snap
}

func newEngine(cfg *config.Config, logger *zap.Logger) *recommend.Engine {
	opts := []recommend.Option{
		recommend.WithDefaultTopN(cfg.Ranking.DefaultTopN),
		recommend.WithRelatedKeywords(cfg.Ranking.RelatedKeywords),
	}
	if cfg.Ranking.ReferenceYear > 0 {
		opts = append(opts, recommend.WithReferenceYear(cfg.Ranking.ReferenceYear))
	}
	return recommend.NewEngine(logger, opts...)
}

func outputFormat(jsonOut bool) cli.OutputFormat {
	if jsonOut {
		return cli.OutputJSON
	}
	return cli.OutputText
}
