// Package i18nstore reads catalogs from go-i18n message files. Each message
// ID is a diagnostic code and its "other" form is the template; plural forms
// other than "other" are ignored.
//
// The catalog "xslt_ja" is looked up as xslt_ja.toml, xslt_ja.yaml and
// xslt_ja.json in that order.
package i18nstore

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/loopcontext/xsltmsg"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

var formats = []string{"toml", "yaml", "json"}

type Store struct {
	fsys           fs.FS
	dir            string
	unmarshalFuncs map[string]i18n.UnmarshalFunc
}

var _ xsltmsg.CatalogStore = (*Store)(nil)

func New(fsys fs.FS, dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{
		fsys: fsys,
		dir:  dir,
		unmarshalFuncs: map[string]i18n.UnmarshalFunc{
			"toml": toml.Unmarshal,
			"yaml": yaml.Unmarshal,
		},
	}
}

func (s *Store) LoadCatalog(domain string, name string) (*xsltmsg.Catalog, error) {
	for _, format := range formats {
		filePath := path.Join(s.dir, name+"."+format)
		content, err := fs.ReadFile(s.fsys, filePath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %w", err)
		}
		entries, err := s.parse(content, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message file %s: %w", filePath, err)
		}
		return xsltmsg.NewCatalog(domain, name, entries)
	}
	return nil, fmt.Errorf("%w: %s", xsltmsg.ErrCatalogNotFound, path.Join(s.dir, name))
}

func (s *Store) parse(content []byte, filePath string) (map[string]string, error) {
	messageFile, err := i18n.ParseMessageFileBytes(content, filePath, s.unmarshalFuncs)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]string, len(messageFile.Messages))
	for _, message := range messageFile.Messages {
		entries[message.ID] = message.Other
	}
	return entries, nil
}

// Names lists the catalog names with a message file in the store's
// directory, in any supported format, sorted and without duplicates.
func (s *Store) Names() ([]string, error) {
	seen := map[string]struct{}{}
	var names []string
	for _, format := range formats {
		matches, err := fs.Glob(s.fsys, path.Join(s.dir, "*."+format))
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			name := strings.TrimSuffix(path.Base(match), "."+format)
			if _, found := seen[name]; found {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
