package main

import (
	"time"
)

const (
	defaultBindHost       = "127.0.0.1"
	defaultAPIPort        = 3000
	defaultFetchTimeout   = 30 * time.Second
	defaultReloadInterval = 5 * time.Minute

	// Published CSV endpoints of the procurement and maintenance sheets.
	defaultQuotationsURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vTnf4Sm6V9ZWNHbHKDtC10sXRmxtdvO66SMFeIGIGE7SYeUgqbqeod010MNeGV0p3KIVcPOVmhBwpFI/pub?output=csv"
	defaultEventsURL     = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSPxGv63oDQ-OTM-K5R1rJote0aPAzfcP2OgjtBg1rIelemz_M6UcQpfNzeOyW7lFvcCPAmof7eKuYl/pub?output=csv"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	QuotationsURL  string        `mapstructure:"quotations-url"`
	EventsURL      string        `mapstructure:"events-url"`
	FetchTimeout   time.Duration `mapstructure:"fetch-timeout"`
	ReloadInterval time.Duration `mapstructure:"reload-interval"`
	APIPort        int           `mapstructure:"api-port"`
	APIAddr        string        `mapstructure:"api-addr"`
	BoardsPath     string        `mapstructure:"boards-path"`
	SessionSecret  string        `mapstructure:"session-secret"`
	ConfigPath     string        `mapstructure:"-"` // not from config file
}
