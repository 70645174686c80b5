package config

const (
	defaultLogFile           = "bookmarkd.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultData              = "/var/opt/bookmarkd"
	// Empty means same-origin, i.e. a reverse proxy in front of the backend.
	defaultAPIBaseURL     = ""
	defaultCatalogBaseURL = "https://openlibrary.org"
	defaultCoverBaseURL   = "https://covers.openlibrary.org"
	defaultSearchLimit    = 50
	defaultPageSize       = 5
)

// Why use mapstructure instead of json, if use json as field tags, it can't recgnize the field, since the viper use mapstructure.
// see: https://pkg.go.dev/github.com/mitchellh/mapstructure#hdr-Field_Tags
type Options struct {
	// LogFile is the file to write logs to, relative paths are placed in Data
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// Data is the directory holding the session database and logs
	Data string `mapstructure:"data"`
	// DSN is the path of the local session database (sqlite)
	DSN string `mapstructure:"dsn_uri"`
	// APIBaseURL is the base URL of the BookMarkd backend
	APIBaseURL string `mapstructure:"api_base_url"`
	// CatalogBaseURL is the base URL of the Open Library API
	CatalogBaseURL string `mapstructure:"catalog_base_url"`
	// CoverBaseURL is the base URL serving Open Library cover images
	CoverBaseURL string `mapstructure:"cover_base_url"`
	// SearchLimit is the maximum number of catalog search results to request
	SearchLimit int `mapstructure:"search_limit"`
	// PageSize is the number of search results shown per page
	PageSize int `mapstructure:"page_size"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Data:              defaultData,
		APIBaseURL:        defaultAPIBaseURL,
		CatalogBaseURL:    defaultCatalogBaseURL,
		CoverBaseURL:      defaultCoverBaseURL,
		SearchLimit:       defaultSearchLimit,
		PageSize:          defaultPageSize,
	}
	return Opts
}
