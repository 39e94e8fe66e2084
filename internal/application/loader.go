package application

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// ConfigLoader parses, validates, and compiles decision configurations,
// transforming declarative YAML into immutable scoring graphs.
// Compiled graphs are cached by the SHA256 of their normalized config so
// identical configurations are never compiled twice.
type ConfigLoader struct {
	// validator performs struct field validation and custom validation
	// rules for configurations and their nested components.
	validator *validator.Validate
	// registry constructs scorers from scoring configuration during
	// graph compilation.
	registry ports.ScorerRegistry
	// cache stores compiled graphs indexed by SHA256 hash of the
	// normalized config. Cached graphs are immutable.
	cache map[string]*Graph
	// cacheMu guards cache.
	cacheMu sync.RWMutex
	// sf collapses concurrent compilations of the same config.
	sf singleflight.Group
}

// NewConfigLoader creates a loader with validation capabilities and an
// empty cache. It registers custom validators beyond basic struct field
// validation and returns an error if registration fails.
func NewConfigLoader(registry ports.ScorerRegistry) (*ConfigLoader, error) {
	if registry == nil {
		return nil, fmt.Errorf("scorer registry must not be nil")
	}

	v := validator.New()
	if err := registerCustomValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	return &ConfigLoader{
		validator: v,
		registry:  registry,
		cache:     make(map[string]*Graph),
	}, nil
}

// LoadFromFile parses, validates, and compiles a YAML configuration
// file into a scoring graph. The returned graph may be shared from the
// cache and must not be mutated.
func (cl *ConfigLoader) LoadFromFile(path string) (*Graph, error) {
	// Clean the path to prevent directory traversal.
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return cl.load(data)
}

// LoadFromReader parses, validates, and compiles a YAML configuration
// from any reader, with the same caching and validation as LoadFromFile.
func (cl *ConfigLoader) LoadFromReader(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return cl.load(data)
}

// Parse decodes YAML into a Config without validating or compiling it.
// Decoding is strict: unknown fields are an error, so configuration
// typos never pass silently.
func (cl *ConfigLoader) Parse(data []byte) (*domain.Config, error) {
	var config domain.Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("YAML decode failed: %w", err)
	}
	return &config, nil
}

// Compile validates a parsed configuration and builds its scoring
// graph. Struct-level validation runs first, then graph construction
// enforces the semantic invariants (unique names, resolvable factors,
// non-empty metrics, acyclicity, reachable final). Nothing is ever
// evaluated against a partially valid configuration.
func (cl *ConfigLoader) Compile(config *domain.Config) (*Graph, error) {
	if err := cl.validator.Struct(config); err != nil {
		return nil, fmt.Errorf("struct validation failed: %w", err)
	}

	graph, err := BuildGraph(config, cl.registry)
	if err != nil {
		return nil, fmt.Errorf("graph validation failed: %w", err)
	}
	return graph, nil
}

// load is the common implementation behind the Load methods, using
// singleflight to collapse duplicate compilation and SHA256 caching to
// skip recompilation of identical configurations.
func (cl *ConfigLoader) load(data []byte) (*Graph, error) {
	config, err := cl.Parse(data)
	if err != nil {
		return nil, err
	}

	// Hash the normalized config, not the raw bytes, so formatting
	// differences share a cache entry.
	hash, err := configHash(config)
	if err != nil {
		return nil, err
	}

	v, err, _ := cl.sf.Do(hash, func() (any, error) {
		if graph, ok := cl.cachedGraph(hash); ok {
			return graph, nil
		}

		graph, err := cl.Compile(config)
		if err != nil {
			return nil, err
		}

		cl.cacheMu.Lock()
		cl.cache[hash] = graph
		cl.cacheMu.Unlock()
		return graph, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Graph), nil
}

// cachedGraph retrieves a previously compiled graph by config hash.
func (cl *ConfigLoader) cachedGraph(hash string) (*Graph, bool) {
	cl.cacheMu.RLock()
	defer cl.cacheMu.RUnlock()

	graph, ok := cl.cache[hash]
	return graph, ok
}

// ClearCache drops all cached graphs, forcing subsequent loads to
// recompile from source.
func (cl *ConfigLoader) ClearCache() {
	cl.cacheMu.Lock()
	defer cl.cacheMu.Unlock()

	cl.cache = make(map[string]*Graph)
}

// configHash computes the SHA256 of a config re-encoded with consistent
// formatting, so semantically identical configs hash identically
// regardless of whitespace or key ordering in the source.
func configHash(config *domain.Config) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(config); err != nil {
		return "", fmt.Errorf("failed to encode config for hashing: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}
