package i18n

import (
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog maps a locale to its flattened messages ("namespace.key" to pattern).
type Catalog map[string]map[string]any

// LoadCatalog loads JSON and YAML message files from an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.json, .yaml or .yml
//
// Example structure:
//
//	en/common.json
//	en/errors.yaml
//	de/common.json
func LoadCatalog(fsys fs.FS) (Catalog, error) {
	catalog := Catalog{}
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		var unmarshal func([]byte, any) error
		// Case-insensitive comparison handles both .YAML and .yaml extensions across different systems
		switch strings.ToLower(path.Ext(filePath)) {
		case ".json":
			unmarshal = json.Unmarshal
		case ".yaml", ".yml":
			unmarshal = yaml.Unmarshal
		default:
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}
		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var messages map[string]any
		if err := unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		catalog.Add(lang, namespace, messages)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// Add merges messages for a locale under a namespace. Nested maps are
// flattened with dot notation.
func (c Catalog) Add(locale, namespace string, messages map[string]any) {
	target, ok := c[locale]
	if !ok {
		target = map[string]any{}
		c[locale] = target
	}
	prefix := ""
	if namespace != "" {
		prefix = namespace + "."
	}
	maps.Copy(target, flattenMessages(messages, prefix))
}

// Messages returns the messages of the closest locale: exact match first,
// then the base language. The result is nil when neither exists.
func (c Catalog) Messages(locale string) map[string]any {
	if m, ok := c[locale]; ok {
		return m
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	return c[base.String()]
}

// Locales lists the locales present in the catalog.
func (c Catalog) Locales() []string {
	return slices.Sorted(maps.Keys(c))
}

func flattenMessages(src map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		fullKey := prefix + key
		switch v := value.(type) {
		case map[string]any:
			maps.Copy(out, flattenMessages(v, fullKey+"."))
		case map[any]any:
			converted := make(map[string]any, len(v))
			for k, val := range v {
				converted[fmt.Sprint(k)] = val
			}
			maps.Copy(out, flattenMessages(converted, fullKey+"."))
		case nil:
		default:
			out[fullKey] = fmt.Sprint(v)
		}
	}
	return out
}
