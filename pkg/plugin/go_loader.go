package plugin

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const goEntryPoint = "PluginDefinition"

// loadGoPlugin interprets a .go plugin file with yaegi. The file must
// define PluginDefinition() (map[string]any, error) at package scope; the
// returned mapping is decoded like a YAML definition.
func loadGoPlugin(path string) (*Definition, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("plugin: %s is empty", path)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("plugin: prepare interpreter: %w", err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("plugin: interpret %s: %w", path, err)
	}
	fnValue, err := i.Eval(goEntryPoint)
	if err != nil {
		return nil, fmt.Errorf("plugin: %s must define %s() (map[string]any, error): %w", path, goEntryPoint, err)
	}
	raw, err := invokeEntryPoint(fnValue)
	if err != nil {
		return nil, fmt.Errorf("plugin: %s: %w", path, err)
	}
	return FromMap(raw)
}

func invokeEntryPoint(value reflect.Value) (map[string]any, error) {
	if !value.IsValid() || value.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s is not a function", goEntryPoint)
	}
	results := value.Call(nil)
	if len(results) == 0 || len(results) > 2 {
		return nil, fmt.Errorf("%s must return (map[string]any[, error])", goEntryPoint)
	}
	if len(results) == 2 && !results[1].IsNil() {
		callErr, ok := results[1].Interface().(error)
		if !ok {
			return nil, fmt.Errorf("%s second return value must be an error", goEntryPoint)
		}
		return nil, callErr
	}
	raw, ok := results[0].Interface().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must return map[string]any, got %T", goEntryPoint, results[0].Interface())
	}
	return raw, nil
}
