package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var dataproxyURI string
	var logLevel string

	cmd := &cobra.Command{
		Use:           "vrs-annotate",
		Short:         "Compute and attach GA4GH VRS identifiers to genomic variants",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.PersistentFlags().StringVar(&dataproxyURI, "dataproxy-uri", "", "seqrepo data proxy URI (seqrepo+file://... or seqrepo+http(s)://...); falls back to $GA4GH_VRS_DATAPROXY_URI")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	viper.SetEnvPrefix("GA4GH_VRS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("dataproxy-uri", cmd.PersistentFlags().Lookup("dataproxy-uri"))
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".vrs-annotate.yaml"))
		_ = viper.ReadInConfig()
	}

	cmd.AddCommand(newVCFCmd())
	cmd.AddCommand(newTranslateCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// resolveDataproxyURI returns the --dataproxy-uri flag value, falling
// back to the GA4GH_VRS_DATAPROXY_URI environment variable (via
// viper) when the flag was left empty.
func resolveDataproxyURI(cmd *cobra.Command) (string, error) {
	flagVal, _ := cmd.Flags().GetString("dataproxy-uri")
	if flagVal != "" {
		return flagVal, nil
	}
	if v := viper.GetString("dataproxy-uri"); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("no seqrepo data proxy configured: pass --dataproxy-uri or set GA4GH_VRS_DATAPROXY_URI")
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	level := viper.GetString("log-level")
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not build logger:", err)
		return zap.NewNop()
	}
	return logger
}
