package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvironmentVar selects which environment-specific dotenv file is layered
// on top of the base one.
const EnvironmentVar = "APP_ENVIRONMENT"

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	envFilesLoaded sync.Once
)

// Load parses environment variables into v, caching the result per type.
//
// On first use it loads dotenv files in precedence order:
//
//  1. variables already present in the process environment
//  2. .env.<APP_ENVIRONMENT> (e.g. .env.production)
//  3. .env
//
// godotenv never overrides a variable that is already set, so the files are
// loaded most-specific first. Missing files are ignored.
//
// Example:
//
//	type DatabaseConfig struct {
//		URL  string `env:"MONGODB_URL,required"`
//		Name string `env:"MONGODB_DATABASE" envDefault:"newsletter"`
//	}
//
//	var cfg DatabaseConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	envFilesLoaded.Do(loadEnvFiles)
	if v == nil {
		return ErrNilPointer
	}

	typeName := typeNameOf[T]()

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	globalCache.once(typeName).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		globalCache.set(typeName, *v)
	})
	if err != nil {
		return err
	}

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load parses the
// environment again. Intended for tests.
func Reset() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func loadEnvFiles() {
	files := make([]string, 0, 2)
	if name := strings.ToLower(strings.TrimSpace(os.Getenv(EnvironmentVar))); name != "" {
		files = append(files, ".env."+name)
	}
	files = append(files, ".env")

	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func (c *configCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *configCache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = v
}

func (c *configCache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func typeNameOf[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
