// Package main is the Hirogeru CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/hirogeru/internal/cli"
	"github.com/hyperjump/hirogeru/internal/config"
	"github.com/hyperjump/hirogeru/internal/corpus"
	"github.com/hyperjump/hirogeru/internal/embedding"
	"github.com/hyperjump/hirogeru/internal/expansion"
	"github.com/hyperjump/hirogeru/internal/models"
	"github.com/hyperjump/hirogeru/internal/search"
	"github.com/hyperjump/hirogeru/internal/server"
	"github.com/hyperjump/hirogeru/internal/storage"
	"github.com/hyperjump/hirogeru/internal/vector"
	"github.com/hyperjump/hirogeru/internal/watcher"
	"github.com/hyperjump/hirogeru/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/hirogeru/config.yaml"

// loadConfig resolves and loads the config file. Given the default path, a
// config.yaml in the current directory wins when present (for development).
// A missing default config is not an error: the optimizer runs fine on built-in
// defaults and the sample corpus. Returns the config and the path that was actually
// loaded (empty when running on built-in defaults).
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
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// resolveAPIKey returns the Grok API key from the flag value or the GROK_API_KEY
// environment variable. An empty result means no key is configured.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GROK_API_KEY")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "optimize":
		runOptimize(os.Args[2:])
	case "serve":
		runServe()
	case "index":
		runIndex()
	case "history":
		runHistory()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("hirogeru version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		if strings.HasPrefix(command, "-") {
			// "hirogeru -query ..." is shorthand for "hirogeru optimize -query ...".
			runOptimize(os.Args[1:])
			return
		}
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// printOptimizeUsage prints optimize subcommand usage and examples.
func printOptimizeUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: hirogeru optimize -query \"your question\" [flags]\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
The optimizer expands the query into semantic variants via the Grok API and
runs one nearest-neighbor search per variant. The per-variant results are
merged into a single deduplicated ranking. Without a reachable API the
expander falls back to deterministic rule-based variants.

Examples:
  hirogeru optimize -query "Key risks in climate reports?"
  hirogeru optimize -query "Sea level rise projections" -top-k 10 -verbose
  hirogeru optimize -query "climate impacts" -output results.json
`)
}

func runOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	query := fs.String("query", "", "query to optimize (required)")
	topK := fs.Int("top-k", 5, "results per query variant")
	verbose := fs.Bool("verbose", false, "show a text excerpt under each ranked result")
	formatFlag := fs.String("format", "text", "stdout format: text or json")
	output := fs.String("output", "", "write the JSON report to this file")
	apiKey := fs.String("api-key", "", "Grok API key (overrides GROK_API_KEY)")
	corpusPath := fs.String("corpus", "", "corpus file or directory (default: stored corpus, else built-in sample)")
	fs.Usage = func() { printOptimizeUsage(fs) }
	_ = fs.Parse(args)

	if strings.TrimSpace(*query) == "" {
		fmt.Fprintln(os.Stderr, "Error: -query is required")
		printOptimizeUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *formatFlag {
	case "json":
		format = cli.OutputJSON
	case "text", "":
		format = cli.OutputText
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q; use text or json\n", *formatFlag)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if key := resolveAPIKey(*apiKey); key != "" {
		cfg.Expansion.APIKey = key
	}
	if cfg.Expansion.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: Grok API key not provided.")
		fmt.Fprintln(os.Stderr, "Set GROK_API_KEY environment variable or use --api-key flag")
		fmt.Fprintln(os.Stderr, "Example: export GROK_API_KEY='your-key-here'")
		os.Exit(1)
	}
	if *corpusPath != "" {
		cfg.Corpus.Directories = []string{*corpusPath}
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	ctx := context.Background()
	if err := buildCorpusIndex(ctx, components, cfg, logger); err != nil {
		if errors.Is(err, search.ErrEmptyCorpus) && len(cfg.Corpus.Directories) > 0 {
			fmt.Fprintf(os.Stderr, "No readable documents under %s\n", strings.Join(cfg.Corpus.Directories, ", "))
		} else {
			fmt.Fprintf(os.Stderr, "Failed to build index: %v\n", err)
		}
		os.Exit(1)
	}

	result, err := components.Engine.Optimize(ctx, &models.OptimizeRequest{Query: *query, TopK: *topK})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Optimization failed: %v\n", err)
		os.Exit(1)
	}

	run := &models.Run{
		Query:    result.Query,
		Variants: result.Variants,
		Metrics:  result.Metrics,
	}
	if err := components.Storage.SaveRun(ctx, run); err != nil {
		logger.Warn("failed to persist run", zap.Error(err))
	}

	if err := cli.WriteResult(os.Stdout, result, format, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := cli.SaveReport(*output, result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results saved to: %s\n", *output)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	apiKey := fs.String("api-key", "", "Grok API key (overrides GROK_API_KEY)")
	watch := fs.Bool("watch", false, "watch corpus directories and rebuild the index on changes")
	debug := fs.Bool("debug", false, "enable debug logging (expansion attempts, corpus changes)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if key := resolveAPIKey(*apiKey); key != "" {
		cfg.Expansion.APIKey = key
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if resolvedConfigPath != "" {
		logger.Info("config loaded",
			zap.String("config_path", resolvedConfigPath),
			zap.Bool("debug", debugMode),
		)
	} else {
		logger.Info("using built-in configuration defaults", zap.Bool("debug", debugMode))
	}
	if cfg.Expansion.APIKey == "" {
		logger.Warn("no Grok API key configured, query expansion will use rule-based fallback variants")
	}

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	ctx := context.Background()
	if err := buildCorpusIndex(ctx, components, cfg, logger); err != nil {
		if errors.Is(err, search.ErrEmptyCorpus) {
			logger.Warn("corpus is empty, optimize requests will fail until documents are added")
		} else {
			logger.Fatal("Failed to build index", zap.Error(err))
		}
	}

	watchEnabled := cfg.Corpus.Watch || *watch
	if watchEnabled && len(cfg.Corpus.Directories) > 0 {
		rebuild := func() {
			if err := buildCorpusIndex(context.Background(), components, cfg, logger); err != nil {
				logger.Warn("corpus rebuild failed", zap.Error(err))
			}
		}
		watchOpts := []watcher.WatcherOption{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc := watcher.NewWatcher(
			cfg.Corpus.Directories,
			cfg.Corpus.Extensions,
			cfg.Corpus.RecursiveOrDefault(),
			rebuild,
			watchOpts...,
		)
		watchCtx, watchCancel := context.WithCancel(ctx)
		defer watchCancel()
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
	}

	srv := server.NewServer(components.Engine, components.Storage, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}

func runIndex() {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if fs.NArg() > 0 {
		cfg.Corpus.Directories = fs.Args()
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Printf("Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	var docs []models.Document
	if len(cfg.Corpus.Directories) > 0 {
		docs, err = loadCorpusPaths(ctx, cfg, logger)
		if err != nil {
			fmt.Printf("Failed to load corpus: %v\n", err)
			os.Exit(1)
		}
	} else {
		docs = corpus.SampleDocuments()
	}
	if len(docs) == 0 {
		fmt.Printf("No readable documents under %s\n", strings.Join(cfg.Corpus.Directories, ", "))
		os.Exit(1)
	}
	if err := store.ReplaceDocuments(ctx, docs); err != nil {
		fmt.Printf("Failed to store corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Stored %d document(s) in %s\n", len(docs), cfg.Storage.DatabasePath)
}

// historyResponse is the shape of the GET /api/v1/runs response.
type historyResponse struct {
	Runs  []*models.Run `json:"runs"`
	Total int           `json:"total"`
}

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = read storage directly)")
	limit := fs.Int("limit", 20, "number of runs to list")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var history historyResponse
	if *serverURL != "" {
		res, err := historyViaHTTP(*serverURL, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "History failed: %v\n", err)
			os.Exit(1)
		}
		history = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		runs, err := store.ListRuns(context.Background(), *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "List runs failed: %v\n", err)
			os.Exit(1)
		}
		if runs == nil {
			runs = []*models.Run{}
		}
		history = historyResponse{Runs: runs, Total: len(runs)}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(history); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		if len(history.Runs) == 0 {
			fmt.Println("No runs recorded")
			return
		}
		fmt.Printf("# %d run(s), newest first\n", history.Total)
		for _, run := range history.Runs {
			fmt.Printf("%s  %+6.1f%%  %s  %s\n",
				run.CreatedAt.Local().Format("2006-01-02 15:04"),
				run.Metrics.RecallImprovementPct,
				run.ID,
				run.Query,
			)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func historyViaHTTP(serverURL string, limit int) (*historyResponse, error) {
	resp, err := http.Get(fmt.Sprintf("%s/api/v1/runs?limit=%d", serverURL, limit))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var h historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &h, nil
}

// statusConfigResponse is the configuration section of the status output.
type statusConfigResponse struct {
	IndexType           string   `json:"index_type"`
	EmbeddingDimensions int      `json:"embedding_dimensions,omitempty"`
	ExpansionModel      string   `json:"expansion_model,omitempty"`
	DatabasePath        string   `json:"database_path,omitempty"`
	CorpusDirectories   []string `json:"corpus_directories,omitempty"`
}

// statusResponse is the shape of the GET /api/v1/status response.
type statusResponse struct {
	Documents      int64                 `json:"documents"`
	IndexSize      int                   `json:"index_size"`
	Runs           int64                 `json:"runs"`
	DiskUsageBytes *int64                `json:"disk_usage_bytes,omitempty"`
	Config         *statusConfigResponse `json:"config,omitempty"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = read storage directly)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		ctx := context.Background()
		docCount, err := store.CountDocuments(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count documents failed: %v\n", err)
			os.Exit(1)
		}
		runCount, err := store.CountRuns(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count runs failed: %v\n", err)
			os.Exit(1)
		}
		// The vector index lives in the optimize/serve process, so direct
		// status reports no index.
		status = statusResponse{
			Documents: docCount,
			Runs:      runCount,
			Config: &statusConfigResponse{
				IndexType:           cfg.Retrieval.IndexType,
				EmbeddingDimensions: cfg.Embedding.Dimensions,
				ExpansionModel:      cfg.Expansion.Model,
				DatabasePath:        cfg.Storage.DatabasePath,
				CorpusDirectories:   cfg.Corpus.Directories,
			},
		}
		if size, sizeErr := store.SizeBytes(); sizeErr == nil {
			status.DiskUsageBytes = &size
		}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("documents:          %d   # documents in the stored corpus\n", status.Documents)
		fmt.Printf("index_size:         %d   # vectors in the in-memory index\n", status.IndexSize)
		fmt.Printf("runs:               %d   # optimization runs recorded\n", status.Runs)
		if status.DiskUsageBytes != nil {
			fmt.Printf("disk_usage_bytes:   %d   # run database on disk\n", *status.DiskUsageBytes)
		}
		if status.Config != nil {
			fmt.Println()
			fmt.Println("# configuration")
			fmt.Printf("index_type:         %s\n", status.Config.IndexType)
			if status.Config.EmbeddingDimensions > 0 {
				fmt.Printf("embedding_dims:     %d\n", status.Config.EmbeddingDimensions)
			}
			if status.Config.ExpansionModel != "" {
				fmt.Printf("expansion_model:    %s\n", status.Config.ExpansionModel)
			}
			if status.Config.DatabasePath != "" {
				fmt.Printf("database_path:      %s\n", status.Config.DatabasePath)
			}
			if len(status.Config.CorpusDirectories) > 0 {
				fmt.Printf("corpus_directories: %s\n", strings.Join(status.Config.CorpusDirectories, ", "))
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

// Components bundles the services a subcommand needs once wired up.
type Components struct {
	Storage  storage.Storage
	Embedder embedding.Embedder
	Engine   *search.Engine
}

func (c *Components) Close() {
	if c.Engine != nil {
		_ = c.Engine.Close()
	}
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var embedder embedding.Embedder
	onnxEmbedder, err := embedding.NewONNXEmbedder(
		cfg.Embedding.ModelPath,
		cfg.Embedding.Dimensions,
		cfg.Embedding.MaxTokens,
		cfg.Embedding.CacheSize,
	)
	if err != nil {
		if logger != nil {
			logger.Warn("ONNX embedder unavailable, using hash embedder",
				zap.String("model_path", cfg.Embedding.ModelPath),
				zap.Error(err))
		}
		embedder = embedding.NewHashEmbedder(cfg.Embedding.Dimensions)
	} else {
		embedder = onnxEmbedder
	}

	if cfg.Retrieval.IndexType == string(vector.IndexTypeFAISS) && !vector.IsFAISSAvailable() {
		if logger != nil {
			logger.Warn("FAISS support not compiled in, falling back to memory index")
		}
		cfg.Retrieval.IndexType = string(vector.IndexTypeMemory)
	}

	expander := expansion.NewGrokExpander(&cfg.Expansion, expansion.WithLogger(logger))
	engine := search.NewEngine(embedder, expander, &cfg.Retrieval)

	return &Components{
		Storage:  store,
		Embedder: embedder,
		Engine:   engine,
	}, nil
}

// loadCorpus returns the documents to index. Configured corpus paths take
// priority, then previously stored documents, then the built-in sample corpus.
// The second return value reports whether the documents came from storage.
func loadCorpus(ctx context.Context, store storage.Storage, cfg *config.Config, logger *zap.Logger) ([]models.Document, bool, error) {
	if len(cfg.Corpus.Directories) > 0 {
		docs, err := loadCorpusPaths(ctx, cfg, logger)
		if err != nil {
			return nil, false, err
		}
		return docs, false, nil
	}
	stored, err := store.ListDocuments(ctx)
	if err == nil && len(stored) > 0 {
		return stored, true, nil
	}
	return corpus.SampleDocuments(), false, nil
}

// loadCorpusPaths loads documents from the configured corpus paths. Directory
// entries are walked by the loader; file entries are extracted directly and
// appended after the directory documents, continuing the positional IDs.
func loadCorpusPaths(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]models.Document, error) {
	var dirs, files []string
	for _, p := range cfg.Corpus.Directories {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat corpus path: %w", err)
		}
		if info.IsDir() {
			dirs = append(dirs, p)
		} else {
			files = append(files, p)
		}
	}

	var docs []models.Document
	if len(dirs) > 0 {
		opts := []corpus.LoaderOption{}
		if logger != nil {
			opts = append(opts, corpus.WithLogger(logger))
		}
		loader := corpus.NewLoader(cfg.Corpus.Extensions, cfg.Corpus.RecursiveOrDefault(), opts...)
		loaded, err := loader.LoadDirectories(ctx, dirs)
		if err != nil {
			return nil, err
		}
		docs = loaded
	}

	extractor := corpus.NewExtractor()
	for _, path := range files {
		text, err := extractor.Extract(path)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", path, err)
		}
		text = corpus.Preprocess(text)
		if text == "" {
			continue
		}
		docs = append(docs, models.Document{
			ID:     len(docs),
			Title:  filepath.Base(path),
			Text:   text,
			Source: path,
		})
	}
	return docs, nil
}

// buildCorpusIndex loads the corpus and builds the engine's vector index from
// it. Freshly loaded documents are persisted so the stored corpus mirrors the
// index; documents that already came from storage are not rewritten.
func buildCorpusIndex(ctx context.Context, components *Components, cfg *config.Config, logger *zap.Logger) error {
	docs, fromStorage, err := loadCorpus(ctx, components.Storage, cfg, logger)
	if err != nil {
		return err
	}
	if err := components.Engine.BuildIndex(ctx, docs); err != nil {
		return err
	}
	if !fromStorage {
		if err := components.Storage.ReplaceDocuments(ctx, docs); err != nil {
			if logger != nil {
				logger.Warn("failed to persist corpus", zap.Error(err))
			}
		}
	}
	if logger != nil {
		logger.Info("corpus indexed", zap.Int("documents", len(docs)))
	}
	return nil
}

func printUsage() {
	fmt.Println(`hirogeru - Multi-query retrieval optimizer

Usage:
  hirogeru optimize [flags]         Expand a query and run optimized retrieval
  hirogeru serve [flags]            Start the HTTP server
  hirogeru index [flags] [path...]  Load a document corpus into storage
  hirogeru history [flags]          List recorded optimization runs
  hirogeru status [flags]           Show corpus and run-history status
  hirogeru version                  Show version
  hirogeru help                     Show this help

Running "hirogeru -query ..." without a subcommand is shorthand for
"hirogeru optimize -query ...".

Optimize Flags:
  --query string     Query to optimize (required)
  --top-k int        Results per query variant (default: 5)
  --verbose          Show a text excerpt under each ranked result
  --format string    Stdout format: text or json (default: text)
  --output string    Write the JSON report to this file
  --api-key string   Grok API key (default: GROK_API_KEY environment variable)
  --corpus string    Corpus file or directory (default: stored corpus, else built-in sample)
  --config string    Config file path (default: /usr/local/etc/hirogeru/config.yaml)

Serve Flags:
  --config string    Config file path
  --api-key string   Grok API key (default: GROK_API_KEY environment variable)
  --watch            Watch corpus directories and rebuild the index on changes
  --debug            Enable debug logging (expansion attempts, corpus changes)

Index Flags:
  --config string    Config file path

History Flags:
  --config string    Config file path
  --server string    Server URL (empty = read storage directly)
  --limit int        Number of runs to list (default: 20)
  --output string    Output format: text or json (default: text)

Status Flags:
  --config string    Config file path
  --server string    Server URL (empty = read storage directly)
  --output string    Output format: text or json (default: text)

Examples:
  export GROK_API_KEY='your-key-here'
  hirogeru optimize -query "Key risks in climate reports?"
  hirogeru optimize -query "Sea level rise projections" -top-k 10 -verbose
  hirogeru optimize -query "climate impacts" -output results.json
  hirogeru index ./docs
  hirogeru serve --watch
  hirogeru history
  hirogeru status --output json`)
}
