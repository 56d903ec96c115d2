package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/output"
	"github.com/ynsinc/ris/internal/templates"
)

// DefaultAnchor marks the insertion point inside register().
const DefaultAnchor = "// @ris:bindings"

// Config locates the provider files of a project.
type Config struct {
	// ClassFile is the method-body provider class file.
	ClassFile string

	// ClassName and Namespace name the synthesized provider class.
	ClassName string
	Namespace string

	// ArrayFile is the array-literal bindings file.
	ArrayFile string

	// Anchor is the insertion marker for the method-body shape.
	Anchor string

	// FileMode is applied to a synthesized provider file.
	FileMode os.FileMode
}

// Outcome is the result of one registration.
type Outcome string

const (
	Registered Outcome = output.StatusRegistered
	Unchanged  Outcome = output.StatusUnchanged
)

// Result describes what Register did.
type Result struct {
	Shape   Shape
	Path    string
	Outcome Outcome

	// Synthesized reports that the provider class file was created.
	Synthesized bool
}

// Patcher edits provider files through an afero.Fs.
type Patcher struct {
	fs  afero.Fs
	cfg Config
}

// New creates a Patcher.
func New(fs afero.Fs, cfg Config) *Patcher {
	if cfg.Anchor == "" {
		cfg.Anchor = DefaultAnchor
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0o755
	}
	if cfg.ClassName == "" {
		cfg.ClassName = strings.TrimSuffix(filepath.Base(cfg.ClassFile), ".php")
	}
	return &Patcher{fs: fs, cfg: cfg}
}

// ClassName returns the fully qualified name of the method-body provider
// class.
func (p *Patcher) ClassName() string {
	if p.cfg.Namespace == "" {
		return p.cfg.ClassName
	}
	return p.cfg.Namespace + `\` + p.cfg.ClassName
}

// Resolve turns ShapeAuto into a concrete shape. Concrete shapes are
// returned unchanged.
func (p *Patcher) Resolve(shape Shape) (Shape, error) {
	if shape != ShapeAuto {
		return shape, nil
	}

	exists, err := afero.Exists(p.fs, p.cfg.ArrayFile)
	if err != nil {
		return "", oerrors.NewFileSystemError(p.cfg.ArrayFile, err)
	}
	if exists {
		return ShapeArrayLiteral, nil
	}
	return ShapeMethodBody, nil
}

// Path returns the provider file used for shape.
func (p *Patcher) Path(shape Shape) string {
	if shape == ShapeArrayLiteral {
		return p.cfg.ArrayFile
	}
	return p.cfg.ClassFile
}

// Register adds the binding for pair to the provider file selected by shape.
func (p *Patcher) Register(shape Shape, pair Pair) (*Result, error) {
	resolved, err := p.Resolve(shape)
	if err != nil {
		return nil, err
	}

	output.Debug("registering binding",
		"shape", resolved,
		"interface", pair.Interface,
		"implementation", pair.Implementation,
		"file", p.Path(resolved))

	switch resolved {
	case ShapeMethodBody:
		return p.PatchMethodBody(pair)
	case ShapeArrayLiteral:
		return p.PatchArrayLiteral(pair)
	default:
		return nil, fmt.Errorf("unsupported provider shape %q", resolved)
	}
}

// PatchMethodBody inserts the binding after the anchor of the provider class,
// creating the class first when it does not exist.
func (p *Patcher) PatchMethodBody(pair Pair) (*Result, error) {
	path := p.cfg.ClassFile
	binding, err := BindingFor(ShapeMethodBody, pair)
	if err != nil {
		return nil, err
	}
	result := &Result{Shape: ShapeMethodBody, Path: path}

	content, mode, found, err := p.read(path)
	if err != nil {
		return nil, err
	}
	if !found {
		content = templates.ProviderClass(templates.Params{
			ClassName: p.cfg.ClassName,
			Namespace: p.cfg.Namespace,
			Anchor:    p.cfg.Anchor,
		}) + "\n"
		mode = p.cfg.FileMode
		result.Synthesized = true
	}

	if strings.Contains(content, binding.Text) {
		result.Outcome = Unchanged
		return result, nil
	}

	patched, ok := InsertAfterAnchor(content, p.cfg.Anchor, binding.Text)
	if !ok {
		return nil, oerrors.NewAnchorNotFoundError(path, p.cfg.Anchor)
	}

	if err := p.write(path, patched, mode); err != nil {
		return nil, err
	}
	result.Outcome = Registered
	return result, nil
}

// PatchArrayLiteral inserts the binding as the first tuple of the array file.
// A missing file is an error and nothing is written.
func (p *Patcher) PatchArrayLiteral(pair Pair) (*Result, error) {
	path := p.cfg.ArrayFile
	binding, err := BindingFor(ShapeArrayLiteral, pair)
	if err != nil {
		return nil, err
	}
	result := &Result{Shape: ShapeArrayLiteral, Path: path}

	content, mode, found, err := p.read(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, oerrors.NewMissingProviderFileError(path)
	}

	if strings.Contains(content, binding.Text) {
		result.Outcome = Unchanged
		return result, nil
	}

	patched, ok := InsertIntoArray(content, binding.Text)
	if !ok {
		return nil, oerrors.NewAnchorNotFoundError(path, "return [")
	}

	if err := p.write(path, patched, mode); err != nil {
		return nil, err
	}
	result.Outcome = Registered
	return result, nil
}

// read returns the current content and permission bits of path. found is
// false when the file does not exist.
func (p *Patcher) read(path string) (content string, mode os.FileMode, found bool, err error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, false, nil
		}
		return "", 0, false, oerrors.NewFileSystemError(path, err)
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return "", 0, false, oerrors.NewFileSystemError(path, err)
	}
	return string(data), info.Mode().Perm(), true, nil
}

func (p *Patcher) write(path, content string, mode os.FileMode) error {
	if err := p.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewFileSystemError(path, err)
	}
	if err := afero.WriteFile(p.fs, path, []byte(content), mode); err != nil {
		return oerrors.NewFileSystemError(path, err)
	}
	return nil
}
