package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/pktfabric/dataplane/pkg/sysinfo"
)

var (
	rootCmd = &cobra.Command{
		Use:           "hostinfo",
		Short:         "Discover boot-time host characteristics for the dataplane",
		Long:          "Probes logical CPU count, per-CPU model and frequency, cache line size, page size and huge page support, then prints the discovered record as YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}

	configPath       string
	logLevel         string
	requireHugePages bool
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to discovery config")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (must be one of `debug`, `info`, `warn`, `error`)")
	rootCmd.Flags().BoolVar(&requireHugePages, "require-huge-pages", false, "fail unless a hugetlbfs mount is present")
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set GOMAXPROCS: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func parseYaml(l *zap.Logger, path string, conf interface{}) error {
	if path == "" {
		l.Warn("No config file specified, using default")
		return nil
	}

	l.Info("Loading config file", zap.String("path", path))
	configFile, err := os.Open(path)
	if err != nil {
		return err
	}
	defer configFile.Close()

	raw, err := io.ReadAll(configFile)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(raw, conf)
}

type cpuReport struct {
	ID    int    `yaml:"id"`
	Model string `yaml:"model,omitempty"`
	HzMax uint64 `yaml:"hz_max"`
}

type report struct {
	CPUCount      int         `yaml:"cpu_count"`
	CacheLineSize int         `yaml:"cache_line_size"`
	PageSize      uint64      `yaml:"page_size"`
	HugePageSize  uint64      `yaml:"huge_page_size"`
	HugePageDir   string      `yaml:"huge_page_dir,omitempty"`
	CPUs          []cpuReport `yaml:"cpus"`
}

func run() error {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logconf := zap.NewProductionConfig()
	logconf.Level = zap.NewAtomicLevelAt(level)
	l, err := logconf.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	cfg := sysinfo.Config{}
	if err := parseYaml(l, configPath, &cfg); err != nil {
		return err
	}
	if requireHugePages {
		cfg.RequireHugePages = true
	}

	if err := sysinfo.Init(cfg, l); err != nil {
		return fmt.Errorf("host discovery failed: %w", err)
	}

	r := report{
		CPUCount:      sysinfo.CPUCount(),
		CacheLineSize: sysinfo.CacheLineSize(),
		PageSize:      sysinfo.PageSize(),
		HugePageSize:  sysinfo.HugePageSize(),
		HugePageDir:   sysinfo.HugePageDir(),
	}
	for id := 0; id < r.CPUCount && id < sysinfo.MaxCPUCount; id++ {
		model, _ := sysinfo.CPUModel(id)
		r.CPUs = append(r.CPUs, cpuReport{
			ID:    id,
			Model: model,
			HzMax: sysinfo.CPUHzMax(id),
		})
	}

	out, err := yaml.Marshal(&r)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
