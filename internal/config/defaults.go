package config

const (
	defaultDataDir              = "~/.local/share/cinematch"
	defaultLogDir               = "~/.local/share/cinematch/logs"
	defaultAPIBind              = "127.0.0.1:8320"
	defaultDatabaseFile         = "cinematch.db"
	defaultTMDBBaseURL          = "https://api.themoviedb.org/3"
	defaultTMDBLanguage         = "en-US"
	defaultScraperBaseURL       = "https://www.imdb.com"
	defaultScraperUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultScraperMaxPages      = 5
	defaultScraperTimeout       = 30
	defaultScraperMinDelayMs    = 1000
	defaultScraperMaxDelayMs    = 3000
	defaultFuzzyThreshold       = 0.6
	defaultRecommendLimit       = 5
	defaultInterestsTopGenres   = 6
	defaultInterestsTopKeywords = 10
	defaultInterestsRateWeight  = 0.75
	defaultInterestsLikeWeight  = 0.25
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Catalog: Catalog{
			DatabaseFile: defaultDatabaseFile,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Scraper: Scraper{
			BaseURL:        defaultScraperBaseURL,
			UserAgent:      defaultScraperUserAgent,
			MaxPages:       defaultScraperMaxPages,
			RequestTimeout: defaultScraperTimeout,
			MinDelayMillis: defaultScraperMinDelayMs,
			MaxDelayMillis: defaultScraperMaxDelayMs,
		},
		Advisor: Advisor{
			FuzzyThreshold: defaultFuzzyThreshold,
			DefaultLimit:   defaultRecommendLimit,
		},
		Interests: Interests{
			TopGenres:   defaultInterestsTopGenres,
			TopKeywords: defaultInterestsTopKeywords,
			RateWeight:  defaultInterestsRateWeight,
			LikeWeight:  defaultInterestsLikeWeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
