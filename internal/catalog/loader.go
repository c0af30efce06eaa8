package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	ierrors "github.com/ivbench/cli/internal/errors"
)

//go:embed schema.cue
var schemaSource []byte

//go:embed models/*.cue
var embeddedModels embed.FS

// Loader compiles model documents against the #Model schema.
type Loader struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader creates a Loader with a fresh CUE context and the embedded
// #Model schema compiled.
func NewLoader() (*Loader, error) {
	ctx := cuecontext.New()

	schemaFile := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schemaFile.Err(); err != nil {
		return nil, ierrors.NewParseError(cueErrorDetail(err), "schema.cue", "")
	}

	schema := schemaFile.LookupPath(cue.ParsePath("#Model"))
	if err := schema.Err(); err != nil {
		return nil, ierrors.NewParseError(cueErrorDetail(err), "schema.cue", "")
	}

	return &Loader{ctx: ctx, schema: schema}, nil
}

// LoadEmbedded returns the models shipped with the binary.
func (l *Loader) LoadEmbedded() ([]*Model, error) {
	entries, err := embeddedModels.ReadDir("models")
	if err != nil {
		return nil, fmt.Errorf("reading embedded models: %w", err)
	}

	var models []*Model
	for _, entry := range entries {
		data, err := embeddedModels.ReadFile("models/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded model %s: %w", entry.Name(), err)
		}
		m, err := l.loadModel(data, entry.Name())
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// LoadDir loads every *.cue file in dir as a model document. Files are
// processed in lexical order so overrides are deterministic.
func (l *Loader) LoadDir(dir string) ([]*Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ierrors.NewNotFoundError("models directory not readable", dir,
			"Check the --models-dir flag or the modelsDir setting")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cue") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var models []*Model
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading model file %s: %w", path, err)
		}
		m, err := l.loadModel(data, path)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// loadModel compiles one model document, unifies it with #Model and decodes
// the result.
func (l *Loader) loadModel(data []byte, filename string) (*Model, error) {
	value := l.ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, ierrors.NewParseError(cueErrorDetail(err), filename, "")
	}

	unified := l.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, ierrors.NewParseError(cueErrorDetail(err), filename,
			"The model document must satisfy the #Model schema")
	}

	var m Model
	if err := unified.Decode(&m); err != nil {
		return nil, ierrors.NewParseError(cueErrorDetail(err), filename, "")
	}
	return &m, nil
}

// Load builds a Catalog from the embedded models plus any extra directories.
// Models in later directories override embedded models with the same name.
func Load(extraDirs ...string) (*Catalog, error) {
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}

	models, err := loader.LoadEmbedded()
	if err != nil {
		return nil, err
	}

	for _, dir := range extraDirs {
		if dir == "" {
			continue
		}
		extra, err := loader.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		models = append(models, extra...)
	}

	return New(models), nil
}

// cueErrorDetail flattens a CUE error list into one readable message with
// file positions.
func cueErrorDetail(err error) string {
	var b strings.Builder
	for i, e := range cueerrors.Errors(err) {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
		if pos := e.Position(); pos.IsValid() {
			b.WriteString(" (" + pos.String() + ")")
		}
	}
	if b.Len() == 0 {
		return err.Error()
	}
	return b.String()
}
