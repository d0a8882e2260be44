package config

// ApplyDefaults fills every zero-valued field of cfg with its default.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/hirogeru/data/db/runs.db"
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/hirogeru/data/models/all-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Expansion.BaseURL == "" {
		cfg.Expansion.BaseURL = "https://api.x.ai/v1"
	}
	if cfg.Expansion.Model == "" {
		cfg.Expansion.Model = "grok-beta"
	}
	if cfg.Expansion.Temperature == 0 {
		cfg.Expansion.Temperature = 0.7
	}
	if cfg.Expansion.MaxTokens == 0 {
		cfg.Expansion.MaxTokens = 500
	}
	if cfg.Expansion.TimeoutSec == 0 {
		cfg.Expansion.TimeoutSec = 10
	}
	if cfg.Expansion.MaxRetries == 0 {
		cfg.Expansion.MaxRetries = 3
	}
	if cfg.Expansion.NumVariants == 0 {
		cfg.Expansion.NumVariants = 3
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 5
	}
	if cfg.Retrieval.IndexType == "" {
		cfg.Retrieval.IndexType = "memory"
	}
	if cfg.Corpus.Extensions == nil {
		cfg.Corpus.Extensions = []string{".txt", ".md", ".rst", ".pdf", ".docx", ".xlsx", ".pptx", ".odp", ".ods"}
	}
	// nil means unset; unset recursion means recurse.
	if len(cfg.Corpus.Directories) > 0 && cfg.Corpus.Recursive == nil {
		t := true
		cfg.Corpus.Recursive = &t
	}
}
