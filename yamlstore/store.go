// Package yamlstore loads catalogs from YAML files, one file per catalog:
//
//	domain: xslt
//	locale: ja
//	messages:
//	  ER_NO_NAME_ATTRIB: "{0} には名前属性が必要です。"
//	  BAD_CODE: "..."
//	  FORMAT_FAILED: "..."
//
// The file for catalog "xslt_ja" is <dir>/xslt_ja.yaml.
package yamlstore

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/loopcontext/xsltmsg"
	"gopkg.in/yaml.v2"
)

type File struct {
	Domain   string            `yaml:"domain"`
	Locale   xsltmsg.Locale    `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Store reads catalog files from fsys on demand. It keeps no state, so
// callers that load a name repeatedly should sit behind a cache.
type Store struct {
	fsys fs.FS
	dir  string
}

var _ xsltmsg.CatalogStore = (*Store)(nil)

func New(fsys fs.FS, dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{fsys: fsys, dir: dir}
}

func (s *Store) LoadCatalog(domain string, name string) (*xsltmsg.Catalog, error) {
	filePath := path.Join(s.dir, name+".yaml")
	content, err := fs.ReadFile(s.fsys, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", xsltmsg.ErrCatalogNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	file, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filePath, err)
	}
	if file.Domain != "" && file.Domain != domain {
		return nil, fmt.Errorf("catalog file %s belongs to domain %q, not %q", filePath, file.Domain, domain)
	}
	return xsltmsg.NewCatalog(domain, name, file.Messages)
}

// Parse decodes one catalog file.
func Parse(content []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	if file.Messages == nil {
		file.Messages = map[string]string{}
	}
	return &file, nil
}

// Names lists the catalog names available in the store's directory.
func (s *Store) Names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, path.Join(s.dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		base := path.Base(match)
		names = append(names, base[:len(base)-len(".yaml")])
	}
	return names, nil
}
