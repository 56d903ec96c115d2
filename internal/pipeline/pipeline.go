// Package pipeline sequences name resolution, rendering, writing and provider
// registration for one generate command.
package pipeline

import (
	"github.com/ynsinc/ris/internal/layout"
	"github.com/ynsinc/ris/internal/naming"
	"github.com/ynsinc/ris/internal/output"
	"github.com/ynsinc/ris/internal/provider"
	"github.com/ynsinc/ris/internal/templates"
	"github.com/ynsinc/ris/internal/writer"
)

// Pipeline generates artifacts for one project.
type Pipeline struct {
	deps    Deps
	writer  *writer.Writer
	patcher *provider.Patcher
}

// New creates a Pipeline from deps.
func New(deps Deps) *Pipeline {
	if deps.FileMode == 0 {
		deps.FileMode = writer.DefaultFileMode
	}
	if deps.Style == "" {
		deps.Style = templates.Standalone
	}
	if deps.Shape == "" {
		deps.Shape = provider.ShapeAuto
	}
	if deps.Provider.FileMode == 0 {
		deps.Provider.FileMode = deps.FileMode
	}

	return &Pipeline{
		deps:    deps,
		writer:  writer.New(deps.Fs, deps.Confirm, writer.WithFileMode(deps.FileMode)),
		patcher: provider.New(deps.Fs, deps.Provider),
	}
}

// GenerateRepository writes <Name>Interface and <Name>Repository and
// registers the pair with the provider file.
//
// Phase sequence:
//  1. RESOLVE:  naming.Resolve() → class name; a failure returns (nil, err)
//     before anything touches the filesystem
//  2. BASE:     BaseInterface + BaseRepository, style "base" only, written
//     when missing
//  3. WRITE:    interface, then repository, each confirmed before overwrite
//  4. REGISTER: provider.Patcher.Register() for the selected shape
//
// Steps in phases 2-4 never abort each other. Failures land in Result.Steps.
func (p *Pipeline) GenerateRepository(req naming.Request) (*Result, error) {
	name, err := naming.Resolve(req, naming.Repository)
	if err != nil {
		return nil, err
	}

	ifaceTarget := layout.Build(p.deps.Roots.Interfaces, req.Subdir.String())
	repoTarget := layout.Build(p.deps.Roots.Repositories, req.Subdir.String())

	output.Debug("resolved repository target",
		"class", name,
		"interface_namespace", ifaceTarget.Namespace(),
		"repository_namespace", repoTarget.Namespace(),
		"style", p.deps.Style,
	)

	result := &Result{ClassName: name}

	if p.deps.Style == templates.Base {
		p.writeBaseFiles(result)
	}

	params := templates.Params{
		ClassName:          name,
		InterfaceNamespace: ifaceTarget.Namespace(),
		RootNamespace:      p.deps.RootNamespace,
		Style:              p.deps.Style,
	}

	ifaceParams := params
	ifaceParams.Namespace = ifaceTarget.Namespace()
	p.write(result, StepInterface, templates.Artifact{
		Kind:    templates.KindInterface,
		Path:    ifaceTarget.File(name + "Interface"),
		Content: templates.Interface(ifaceParams),
	})

	repoParams := params
	repoParams.Namespace = repoTarget.Namespace()
	p.write(result, StepRepository, templates.Artifact{
		Kind:    templates.KindRepository,
		Path:    repoTarget.File(name + "Repository"),
		Content: templates.Repository(repoParams),
	})

	p.register(result, provider.Pair{
		Interface:      ifaceTarget.Qualify(name + "Interface"),
		Implementation: repoTarget.Qualify(name + "Repository"),
	})

	return result, nil
}

// GenerateService writes a single empty service class. It never touches the
// provider file.
func (p *Pipeline) GenerateService(req naming.Request) (*Result, error) {
	name, err := naming.Resolve(req, naming.Service)
	if err != nil {
		return nil, err
	}

	target := layout.Build(p.deps.Roots.Services, req.Subdir.String())
	output.Debug("resolved service target", "class", name, "namespace", target.Namespace())

	result := &Result{ClassName: name}
	p.write(result, StepService, templates.Artifact{
		Kind: templates.KindService,
		Path: target.File(name),
		Content: templates.Service(templates.Params{
			ClassName:     name,
			Namespace:     target.Namespace(),
			RootNamespace: p.deps.RootNamespace,
		}),
	})

	return result, nil
}

// writeBaseFiles creates the shared base pair at the roots. Existing files
// are kept without asking.
func (p *Pipeline) writeBaseFiles(result *Result) {
	roots := p.deps.Roots
	params := templates.Params{
		InterfaceNamespace: roots.Interfaces.Namespace,
		RootNamespace:      p.deps.RootNamespace,
		Style:              templates.Base,
	}

	base := []struct {
		step string
		art  templates.Artifact
	}{
		{StepBaseInterface, templates.Artifact{
			Kind:    templates.KindBaseInterface,
			Path:    layout.Build(roots.Interfaces, "").File("BaseInterface"),
			Content: templates.BaseInterface(withNamespace(params, roots.Interfaces.Namespace)),
		}},
		{StepBaseRepository, templates.Artifact{
			Kind:    templates.KindBaseRepository,
			Path:    layout.Build(roots.Repositories, "").File("BaseRepository"),
			Content: templates.BaseRepository(withNamespace(params, roots.Repositories.Namespace)),
		}},
	}

	for _, b := range base {
		outcome, err := p.writer.WriteIfMissing(b.art.Path, b.art.Content)
		result.Steps = append(result.Steps, stepFor(b.step, b.art.Path, string(outcome), err))
	}
}

func withNamespace(p templates.Params, ns string) templates.Params {
	p.Namespace = ns
	return p
}

// write hands one artifact to the writer and records the step.
func (p *Pipeline) write(result *Result, step string, art templates.Artifact) {
	outcome, err := p.writer.Write(art.Path, art.Content)
	result.Steps = append(result.Steps, stepFor(step, art.Path, string(outcome), err))
}

// register patches the provider file and records the step.
func (p *Pipeline) register(result *Result, pair provider.Pair) {
	res, err := p.patcher.Register(p.deps.Shape, pair)
	if err != nil {
		path := p.deps.Provider.ClassFile
		if shape, rerr := p.patcher.Resolve(p.deps.Shape); rerr == nil {
			path = p.patcher.Path(shape)
		}
		result.Steps = append(result.Steps, stepFor(StepProvider, path, "", err))
		return
	}

	if res.Synthesized {
		result.ProviderSynthesized = true
		output.Warn("created provider class, register it with the framework",
			"class", p.patcher.ClassName(),
			"file", res.Path,
		)
	}
	result.Steps = append(result.Steps, stepFor(StepProvider, res.Path, string(res.Outcome), nil))
}

func stepFor(name, path, status string, err error) Step {
	if err != nil {
		output.Debug("step failed", "step", name, "path", path, "error", err)
		return Step{Name: name, Path: path, Status: output.StatusFailed, Err: err}
	}
	return Step{Name: name, Path: path, Status: status}
}
