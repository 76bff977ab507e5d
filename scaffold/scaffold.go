// Package scaffold writes the starter files for a new site directory: an
// env file documenting every setting and a seed file to import with the
// seed command.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Templates contains the scaffold template files. Files use Go
// text/template syntax and have a .tmpl suffix.
//
//go:embed templates/*.tmpl
var Templates embed.FS

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName string
	SiteURL  string
}

// Result lists the files Write created and the ones it left alone
// because they already existed.
type Result struct {
	Created []string
	Skipped []string
}

// Write renders every template into dir. Existing files are never
// overwritten; they are reported in Result.Skipped.
func Write(dir string, data Data) (Result, error) {
	var res Result
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, err
	}
	err := fs.WalkDir(Templates, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ".tmpl")
		// dotenv becomes .env.example
		if name == "dotenv" {
			name = ".env.example"
		}
		outPath := filepath.Join(dir, name)

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			res.Skipped = append(res.Skipped, outPath)
			return nil
		}
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		res.Created = append(res.Created, outPath)
		return nil
	})
	return res, err
}
