package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// LoadFS reads every YAML and JSON file directly under dir in fsys and
// merges them. Files are applied in name order. Other files are skipped.
func LoadFS(fsys fs.FS, dir string) (Translations, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make(Translations)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		parser, err := ParserFor(e.Name())
		if err != nil {
			continue
		}
		name := path.Join(dir, e.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		tr, err := parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out.Merge(tr)
	}
	return out, nil
}
