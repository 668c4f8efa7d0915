package content

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"golang.org/x/sync/errgroup"
)

// LoadFile reads and validates a single content file
func LoadFile(path string) (*Catalog, error) {
	catalog, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadDir reads every .yaml and .yml file in dir, merges them in file name
// order and validates the result
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to read content dir %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, dnderr.NotFoundf("no content files in %s", dir).WithMeta("dir", dir)
	}

	parsed := make([]*Catalog, len(paths))
	g := new(errgroup.Group)
	for i, path := range paths {
		g.Go(func() error {
			c, err := readFile(path)
			if err != nil {
				return err
			}
			parsed[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := &Catalog{}
	for _, c := range parsed {
		catalog.Merge(c)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[CONTENT] Loaded %d files from %s: %d cards, %d power cards, %d relics, %d monster cards",
		len(paths), dir, len(catalog.Cards), len(catalog.PowerCards), len(catalog.Relics), len(catalog.MonsterCards))
	return catalog, nil
}

func readFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to read content file %s", path)
	}
	catalog, err := Parse(data)
	if err != nil {
		return nil, dnderr.Wrapf(err, "in %s", path)
	}
	return catalog, nil
}
