package website

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML import format for resources:
//
//	categories:
//	  - name: Go
//	    resources:
//	      - title: A Tour of Go
//	        url: https://go.dev/tour
//	        description: Interactive introduction to Go.
type Seed struct {
	Categories []SeedCategory `yaml:"categories"`
}

// SeedCategory groups seed resources under a category name.
type SeedCategory struct {
	Name      string         `yaml:"name"`
	Resources []SeedResource `yaml:"resources"`
}

// SeedResource is one resource in a seed file. Draft marks it
// unpublished.
type SeedResource struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

// LoadSeedFile reads and validates a seed file.
func LoadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// ParseSeed decodes a seed document and checks that every resource has a
// title and URL.
func ParseSeed(r io.Reader) (Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	for _, cat := range seed.Categories {
		for i, res := range cat.Resources {
			if strings.TrimSpace(res.Title) == "" || strings.TrimSpace(res.URL) == "" {
				return Seed{}, fmt.Errorf("seed category %q resource %d: title and url are required", cat.Name, i+1)
			}
		}
	}
	return seed, nil
}

// resourceSaver is the part of Store ImportSeed writes to.
type resourceSaver interface {
	SaveResource(ctx context.Context, r Resource) (int64, error)
}

// ImportSeed saves every seed resource, numbering positions in file order
// within each category. It returns how many resources were saved.
func ImportSeed(ctx context.Context, store resourceSaver, seed Seed) (int, error) {
	n := 0
	for _, cat := range seed.Categories {
		for i, res := range cat.Resources {
			_, err := store.SaveResource(ctx, Resource{
				Title:       strings.TrimSpace(res.Title),
				URL:         strings.TrimSpace(res.URL),
				Description: strings.TrimSpace(res.Description),
				Category:    strings.TrimSpace(cat.Name),
				Position:    i,
				Published:   !res.Draft,
			})
			if err != nil {
				return n, fmt.Errorf("import %q: %w", res.Title, err)
			}
			n++
		}
	}
	return n, nil
}
