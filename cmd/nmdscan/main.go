// Package main provides the nmdscan command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nmdscan",
		Short:         "Classify premature stop codons as NMD-triggering or NMD-escaping",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newAnnotateCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newResultsCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.nmdscan.yaml and sets defaults.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".nmdscan")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("annotate.table", 0)
	viper.SetDefault("annotate.workers", 0)
	viper.SetDefault("store.path", "")
	viper.SetDefault("log.verbose", false)

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// defaultCacheDir returns the default transcript cache location.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nmdscan"
	}
	return filepath.Join(home, ".nmdscan")
}
