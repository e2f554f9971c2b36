package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource string

// catalogDoc is the on-disk shape shared by CUE and YAML catalog files.
type catalogDoc struct {
	Runes []Rune `json:"runes" yaml:"runes"`
}

// LoadFile loads a catalog, choosing the decoder by file extension
// (.cue, .yaml or .yml).
func LoadFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog file not found: %s", path), Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog file: %v", err), Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog path is a directory: %s", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading catalog file: %v", err), Err: err}
	}

	switch ext := filepath.Ext(path); ext {
	case ".cue":
		return LoadCUE(path, data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("unsupported catalog format %q: must be .cue, .yaml or .yml", ext)}
	}
}

// LoadCUE compiles CUE source and unifies it with the catalog schema.
// filename is used for error positions only.
//
// Example source:
//
//	runes: [
//		{name: "El", power: 28, cannot_link_with: "Ort"},
//		{name: "Ber", power: 3},
//	]
func LoadCUE(filename string, src []byte) (*Catalog, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fromCUEError(ErrCodeBuildFailed, err)
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fromCUEError(ErrCodeBuildFailed, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fromCUEError(ErrCodeBuildFailed, err)
	}

	var doc catalogDoc
	if err := unified.Decode(&doc); err != nil {
		return nil, fromCUEError(ErrCodeBuildFailed, err)
	}
	return build(doc)
}

// LoadYAML decodes a YAML catalog. Unknown fields are rejected so typos
// such as "cannot_link:" do not silently drop an exclusion.
func LoadYAML(src []byte) (*Catalog, error) {
	var doc catalogDoc
	decoder := yaml.NewDecoder(bytes.NewReader(src))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("failed to parse YAML: %v", err), Err: err}
	}
	return build(doc)
}

func build(doc catalogDoc) (*Catalog, error) {
	c, err := New(doc.Runes)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error(), Err: err}
	}
	return c, nil
}

// fromCUEError keeps the position of the first CUE error.
func fromCUEError(code string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error(), Err: err}
	}

	first := errs[0]
	loadErr := &LoadError{Code: code, Message: first.Error(), Err: err}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}

// IsLoadError reports whether err is (or wraps) a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
