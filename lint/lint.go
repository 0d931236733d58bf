package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pseudolint/plint/internal"
	"github.com/pseudolint/plint/internal/detect"
	"github.com/pseudolint/plint/internal/registry"
	"github.com/pseudolint/plint/internal/types"
)

// DefaultConfigName is the configuration file looked up in the working
// directory when no path is given.
const DefaultConfigName = ".plint.yaml"

// LintEngine is the interface the CLI drives.
type LintEngine interface {
	Run(filePath string) ([]types.Flag, error)
	RunSource(source []byte) ([]types.Flag, error)
	IgnoreRule(rule string)
}

// New builds an engine from the configuration at configurationPath. An empty
// path falls back to .plint.yaml when present, else to built-in defaults.
func New(configurationPath string) (*internal.Engine, error) {
	cfg := DefaultConfig()

	path := configurationPath
	if path == "" {
		if _, err := os.Stat(DefaultConfigName); err == nil {
			path = DefaultConfigName
		}
	}
	if path != "" {
		loaded, err := parseConfigurationFile(path)
		if err != nil {
			return nil, err
		}
		if loaded.Variables != nil {
			cfg.Variables = loaded.Variables
		}
		for name, rule := range loaded.Rules {
			cfg.Rules[name] = rule
		}
	}

	return internal.NewEngine(cfg.Variables, cfg.Rules)
}

// ProcessFiles analyzes every path in order and returns the accumulated
// flags.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]types.Flag, error),
) ([]types.Flag, error) {
	var allFlags []types.Flag
	for _, path := range paths {
		flags, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allFlags = append(allFlags, flags...)
	}
	return allFlags, nil
}

// ProcessPath analyzes one file, or walks a directory and analyzes its
// pseudo-code files with a bounded worker pool. Each file gets its own
// variable registry inside the engine run, so files can proceed in parallel
// while flags within a file keep line order.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]types.Flag, error),
) ([]types.Flag, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		// explicit file paths are always accepted, whatever the extension
		return processor(engine, path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var flags []types.Flag

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileFlags, err := processor(engine, fp)
			bar.Add(1)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				return
			}
			mu.Lock()
			flags = append(flags, fileFlags...)
			mu.Unlock()
		}(filePath)
	}
	wg.Wait()
	fmt.Println()

	return flags, nil
}

// ProcessFile runs the engine on a single file.
func ProcessFile(engine LintEngine, filePath string) ([]types.Flag, error) {
	return engine.Run(filePath)
}

// ProcessSource runs the engine on raw source bytes.
func ProcessSource(engine LintEngine, source []byte) ([]types.Flag, error) {
	return engine.RunSource(source)
}

var desiredExtensions = map[string]bool{
	".txt":    true,
	".pseudo": true,
	".pc":     true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// Config is the YAML configuration: per-detector severities plus the
// variable synonym table (canonical name -> accepted spellings).
type Config struct {
	Name      string                      `yaml:"name"`
	Rules     map[string]types.ConfigRule `yaml:"rules"`
	Variables map[string][]string         `yaml:"variables"`
}

// DefaultConfig returns the built-in configuration: all detectors on at
// their default severities, seeded with the built-in variable dictionary.
func DefaultConfig() Config {
	return Config{
		Name: "plint",
		Rules: map[string]types.ConfigRule{
			detect.RuleRedundancy:    {Severity: types.SeverityWarning},
			detect.RuleContradiction: {Severity: types.SeverityError},
			detect.RuleTypo:          {Severity: types.SeverityWarning},
			detect.RuleTypeMismatch:  {Severity: types.SeverityWarning},
		},
		Variables: registry.DefaultSynonyms(),
	}
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}

	return config, nil
}
