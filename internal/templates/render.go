package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/ynsinc/ris/internal/naming"
)

//go:embed php/*.tmpl
var phpFS embed.FS

var phpTemplates = template.Must(
	template.New("php").
		Funcs(template.FuncMap{"lcfirst": naming.LowerFirst}).
		ParseFS(phpFS, "php/*.tmpl"),
)

var templateFiles = map[Kind]string{
	KindInterface:      "interface.php.tmpl",
	KindRepository:     "repository.php.tmpl",
	KindService:        "service.php.tmpl",
	KindBaseInterface:  "base_interface.php.tmpl",
	KindBaseRepository: "base_repository.php.tmpl",
	KindProvider:       "provider.php.tmpl",
}

// Render renders the template for kind. The result never ends with a newline.
func Render(kind Kind, p Params) (string, error) {
	name, ok := templateFiles[kind]
	if !ok {
		return "", fmt.Errorf("unknown artifact kind: %s", kind)
	}

	var b strings.Builder
	if err := phpTemplates.ExecuteTemplate(&b, name, p); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func mustRender(kind Kind, p Params) string {
	out, err := Render(kind, p)
	if err != nil {
		// Unreachable: templates are parsed at init and Params holds plain strings.
		panic(err)
	}
	return out
}

// Interface renders <ClassName>Interface.
func Interface(p Params) string { return mustRender(KindInterface, p) }

// Repository renders <ClassName>Repository implementing <ClassName>Interface.
func Repository(p Params) string { return mustRender(KindRepository, p) }

// Service renders an empty <ClassName> service class.
func Service(p Params) string { return mustRender(KindService, p) }

// BaseInterface renders the shared BaseInterface.
func BaseInterface(p Params) string { return mustRender(KindBaseInterface, p) }

// BaseRepository renders the shared BaseRepository.
func BaseRepository(p Params) string { return mustRender(KindBaseRepository, p) }

// ProviderClass renders a minimal provider whose register method holds
// p.Anchor.
func ProviderClass(p Params) string { return mustRender(KindProvider, p) }
