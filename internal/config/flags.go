package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the command-line configuration source. Values are bound to
// a pflag.FlagSet by [BindFlags] and read back with [Flags.Config] once the
// set has been parsed.
type Flags struct {
	metricsAddress NetAddress
	cfg            StructuredConfig
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address         Grocy server base URL
//	-k/--api-key         Grocy API key
//	-d/--db              cache database path
//	--preferences-dir    preference store directory
//	-c/--config          json file path with configs
//	--request-timeout    request timeout (e.g., "30s", "1m")
//	--breaker-timeout    circuit breaker open period
//	--breaker-failures   consecutive failures opening the breaker
//	--sync-interval      period of the background sync job
//	--metrics-address    metrics endpoint address in format [host]:[port]
//	--log-file           log file path
//	--debug              enable debug logging
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.cfg.Adapter.HTTPAddress, "address", "a", "", "Grocy server base URL")
	fs.StringVarP(&f.cfg.Adapter.APIKey, "api-key", "k", "", "Grocy API key")
	fs.StringVarP(&f.cfg.Storage.DB.DSN, "db", "d", "", "Cache database path")
	fs.StringVar(&f.cfg.Storage.Preferences.Dir, "preferences-dir", "", "Preference store directory")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.cfg.Adapter.BreakerTimeout, "breaker-timeout", 0, "Circuit breaker open period")
	fs.Uint32Var(&f.cfg.Adapter.BreakerMaxFailures, "breaker-failures", 0, "Consecutive failures that open the circuit breaker")
	fs.DurationVar(&f.cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync period")
	fs.Var(&f.metricsAddress, "metrics-address", "Metrics endpoint address host:port")
	fs.StringVar(&f.cfg.App.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.cfg.App.Debug, "debug", false, "Enable debug logging")

	return f
}

// Config returns the values collected from the parsed flag set.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Server.MetricsAddress = f.metricsAddress.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

var _ pflag.Value = (*NetAddress)(nil)
