package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/platinummonkey/protosym/pkg/config"
	"github.com/platinummonkey/protosym/pkg/runtimes"
	"github.com/platinummonkey/protosym/pkg/symcache"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// stringList collects a repeatable flag value
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var includes stringList
	configPath := flag.String("config", "", "Path to protosym.yaml (default: search working directory)")
	descriptorSet := flag.String("descriptor-set", "", "Read a serialized FileDescriptorSet instead of compiling .proto files")
	runtimeIDs := flag.String("runtimes", "", "Comma-separated runtime IDs to emit (default: from config)")
	output := flag.String("out", "", "Report destination, \"-\" for stdout (default: from config)")
	flag.Var(&includes, "I", "Add a .proto import search path (repeatable)")
	flag.Parse()

	logger := logrus.New()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLevel(cfg.ParsedLogLevel())

	// Flags take precedence over file and environment.
	if *runtimeIDs != "" {
		cfg.Runtimes = splitList(*runtimeIDs)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if len(includes) > 0 {
		cfg.IncludePaths = includes
	}

	if *descriptorSet == "" && flag.NArg() == 0 {
		logger.Fatal("No input: pass .proto files or -descriptor-set")
	}

	registry := runtimes.DefaultRegistry()

	var cache *symcache.Cache
	if cfg.Cache.Enabled {
		cache = symcache.New(&symcache.Config{
			MaxEntries: cfg.Cache.MaxEntries,
			TTL:        cfg.CacheTTL(),
		})
	}

	rep, err := newReporter(registry, cfg.Runtimes, cache, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize reporter: %v", err)
	}

	ctx := context.Background()
	files, err := loadFiles(ctx, cfg, *descriptorSet, flag.Args())
	if err != nil {
		logger.Fatalf("Failed to load schema files: %v", err)
	}
	logger.Infof("Loaded %d schema files", len(files))

	report, err := rep.buildReport(files)
	if err != nil {
		logger.Fatalf("Failed to resolve symbols: %v", err)
	}

	if err := writeReport(report, cfg.Output); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}

	if cache != nil {
		stats := cache.Stats()
		logger.Debugf("Symbol cache: %d hits, %d misses (%.0f%% hit rate)",
			stats.Hits, stats.Misses, stats.HitRate*100)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromDir(".")
}

// loadFiles produces descriptors either by deserializing a descriptor set
// or by compiling .proto sources in-process
func loadFiles(ctx context.Context, cfg *config.Config, descriptorSet string, protoPaths []string) ([]protoreflect.FileDescriptor, error) {
	if descriptorSet != "" {
		return loadDescriptorSet(descriptorSet)
	}
	return compileProtos(ctx, cfg.IncludePaths, protoPaths)
}

func loadDescriptorSet(path string) ([]protoreflect.FileDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fdset descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &fdset); err != nil {
		return nil, fmt.Errorf("unmarshaling descriptor set %s: %w", path, err)
	}

	registry, err := protodesc.NewFiles(&fdset)
	if err != nil {
		return nil, fmt.Errorf("building descriptors from %s: %w", path, err)
	}

	files := make([]protoreflect.FileDescriptor, 0, registry.NumFiles())
	registry.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		files = append(files, fd)
		return true
	})
	return files, nil
}

func compileProtos(ctx context.Context, includePaths, protoPaths []string) ([]protoreflect.FileDescriptor, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: includePaths,
		}),
	}

	compiled, err := compiler.Compile(ctx, protoPaths...)
	if err != nil {
		return nil, err
	}

	files := make([]protoreflect.FileDescriptor, 0, len(compiled))
	for _, file := range compiled {
		files = append(files, file)
	}
	return files, nil
}

func writeReport(report *Report, output string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if output == "-" || output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0644)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
