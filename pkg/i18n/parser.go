package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translations maps a language tag to its nested message tree.
type Translations map[string]map[string]any

// Parser decodes one translation file.
type Parser interface {
	Parse(content []byte) (Translations, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(content []byte) (Translations, error)

func (f ParserFunc) Parse(content []byte) (Translations, error) { return f(content) }

// YAML parses files whose top-level keys are language tags.
var YAML Parser = ParserFunc(func(content []byte) (Translations, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return fromDocument(data)
})

// JSON is the JSON counterpart of YAML.
var JSON Parser = ParserFunc(func(content []byte) (Translations, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return fromDocument(data)
})

// ParserFor picks a parser by file extension.
func ParserFor(filename string) (Parser, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func fromDocument(data map[string]any) (Translations, error) {
	out := make(Translations, len(data))
	for lang, v := range data {
		tree, ok := v.(map[string]any)
		if !ok || lang == "" {
			return nil, fmt.Errorf("%w: language %q must map to a table, got %T", ErrInvalidStructure, lang, v)
		}
		out[lang] = tree
	}
	return out, nil
}

// Merge deep-merges src into t. Values in src win.
func (t Translations) Merge(src Translations) {
	for lang, tree := range src {
		if t[lang] == nil {
			t[lang] = make(map[string]any, len(tree))
		}
		mergeTree(t[lang], tree)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				mergeTree(existing, sub)
				continue
			}
			cp := make(map[string]any, len(sub))
			mergeTree(cp, sub)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
