// Package layout derives artifact directories and namespaces from a
// subdirectory option.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/ynsinc/ris/internal/naming"
)

// NamespaceSeparator is the host language namespace separator.
const NamespaceSeparator = `\`

// Root is the base location of one artifact kind.
type Root struct {
	// Dir is the filesystem directory, e.g. "<base>/app/Interfaces".
	Dir string

	// Namespace is the base namespace, e.g. `App\Interfaces`.
	Namespace string
}

// Roots holds the base locations for every generated artifact kind.
type Roots struct {
	Interfaces   Root
	Repositories Root
	Services     Root
	Models       Root
}

// NewRoots returns the conventional roots under basePath/appDir.
func NewRoots(basePath, appDir, rootNamespace string) Roots {
	appPath := filepath.Join(basePath, appDir)
	mk := func(name string) Root {
		return Root{
			Dir:       filepath.Join(appPath, name),
			Namespace: rootNamespace + NamespaceSeparator + name,
		}
	}
	return Roots{
		Interfaces:   mk("Interfaces"),
		Repositories: mk("Repositories"),
		Services:     mk("Services"),
		Models:       mk("Models"),
	}
}

// Target is a resolved location inside one root. It is immutable.
type Target struct {
	dir       string
	fragment  string
	namespace string
}

// Build resolves subdir against root.
func Build(root Root, subdir string) Target {
	segs := naming.SplitSubdir(subdir)

	var fragment string
	if len(segs) > 0 {
		fragment = NamespaceSeparator + strings.Join(segs, NamespaceSeparator)
	}

	return Target{
		dir:       filepath.Join(append([]string{root.Dir}, segs...)...),
		fragment:  fragment,
		namespace: root.Namespace + fragment,
	}
}

// Dir returns the normalized directory.
func (t Target) Dir() string { return t.dir }

// Fragment returns the namespace fragment (`\Billing\Invoices`), or "" when
// no subdirectory was given.
func (t Target) Fragment() string { return t.fragment }

// Namespace returns the full namespace of the target.
func (t Target) Namespace() string { return t.namespace }

// File returns the path of the PHP source file for class.
func (t Target) File(class string) string {
	return filepath.Join(t.dir, class+".php")
}

// Qualify returns the fully qualified class name of class in this target.
func (t Target) Qualify(class string) string {
	return t.namespace + NamespaceSeparator + class
}

// NamespaceOf maps the directory of file to a namespace, treating appPath as
// rootNamespace. Files outside appPath belong to rootNamespace itself.
func NamespaceOf(appPath, rootNamespace, file string) string {
	rel, err := filepath.Rel(appPath, filepath.Dir(file))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return rootNamespace
	}
	segs := strings.Split(filepath.ToSlash(rel), "/")
	return rootNamespace + NamespaceSeparator + strings.Join(segs, NamespaceSeparator)
}
