package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.GraphKey == "" {
		cfg.Catalog.GraphKey = "@graph"
	}
	if cfg.Filter.MaxPages == 0 {
		cfg.Filter.MaxPages = 2000
	}
	if cfg.Ranking.DefaultTopN == 0 {
		cfg.Ranking.DefaultTopN = 10
	}
	if cfg.Ranking.RelatedKeywords == 0 {
		cfg.Ranking.RelatedKeywords = 3
	}
	if cfg.Search.CandidateLimit == 0 {
		cfg.Search.CandidateLimit = 20
	}
}
