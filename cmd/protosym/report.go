package main

import (
	"fmt"

	"github.com/platinummonkey/protosym/pkg/resolver"
	"github.com/platinummonkey/protosym/pkg/runtimes"
	"github.com/platinummonkey/protosym/pkg/symcache"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Report is the JSON document emitted for a set of compiled files
type Report struct {
	Files []*FileReport `json:"files"`
}

// FileReport holds resolved symbols for one schema file
type FileReport struct {
	Path       string             `json:"path"`
	Package    string             `json:"package,omitempty"`
	Syntax     string             `json:"syntax"`
	Namespaces map[string]string  `json:"namespaces"`
	Symbols    []*SymbolReport    `json:"symbols,omitempty"`
	Extensions []*ExtensionReport `json:"extensions,omitempty"`
}

// SymbolReport holds the per-runtime qualified names of a message or enum
type SymbolReport struct {
	SchemaName string            `json:"schema_name"`
	Kind       string            `json:"kind"`
	Names      map[string]string `json:"names"`
	Fields     []*FieldReport    `json:"fields,omitempty"`
}

// FieldReport holds accessor names and semantic flags for one field
type FieldReport struct {
	Name               string            `json:"name"`
	Accessors          map[string]string `json:"accessors"`
	Unsigned           bool              `json:"unsigned"`
	WideIntAnnotation  bool              `json:"wide_int_annotation"`
	NeedsPresenceCheck bool              `json:"needs_presence_check"`
}

// ExtensionReport holds the per-runtime access paths of an extension field
type ExtensionReport struct {
	SchemaName string            `json:"schema_name"`
	Accessors  map[string]string `json:"accessors"`
	Paths      map[string]string `json:"paths"`
}

// reporter walks descriptor graphs and resolves every symbol for each
// selected runtime convention
type reporter struct {
	specs []*runtimes.Spec
	cache *symcache.Cache
	log   *logrus.Logger
}

// newReporter resolves the requested runtime IDs against the registry. A
// nil cache disables memoization.
func newReporter(registry *runtimes.Registry, ids []string, cache *symcache.Cache, log *logrus.Logger) (*reporter, error) {
	if log == nil {
		log = logrus.New()
	}

	specs := make([]*runtimes.Spec, 0, len(ids))
	for _, id := range ids {
		spec, err := registry.GetEnabled(id)
		if err != nil {
			return nil, fmt.Errorf("runtime %q: %w", id, err)
		}
		specs = append(specs, spec)
	}

	return &reporter{specs: specs, cache: cache, log: log}, nil
}

// buildReport resolves every message, enum, field and extension in files
func (r *reporter) buildReport(files []protoreflect.FileDescriptor) (*Report, error) {
	report := &Report{Files: make([]*FileReport, 0, len(files))}

	for _, file := range files {
		fr, err := r.fileReport(file)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", file.Path(), err)
		}
		report.Files = append(report.Files, fr)
	}

	return report, nil
}

func (r *reporter) fileReport(file protoreflect.FileDescriptor) (*FileReport, error) {
	fr := &FileReport{
		Path:       file.Path(),
		Package:    string(file.Package()),
		Syntax:     file.Syntax().String(),
		Namespaces: make(map[string]string, len(r.specs)),
	}

	for _, spec := range r.specs {
		// Keyed by path, not package: the class-based namespace also depends
		// on file-level options and the file basename.
		ns, err := r.resolve(spec.ID, symcache.OpFileNamespace, protoreflect.FullName(file.Path()), func() (string, error) {
			return spec.FileNamespace(file), nil
		})
		if err != nil {
			return nil, err
		}
		fr.Namespaces[spec.ID] = ns
	}

	if err := r.addExtensions(fr, file.Extensions()); err != nil {
		return nil, err
	}

	for i := 0; i < file.Messages().Len(); i++ {
		if err := r.addMessage(fr, file.Messages().Get(i)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < file.Enums().Len(); i++ {
		if err := r.addEnum(fr, file.Enums().Get(i)); err != nil {
			return nil, err
		}
	}

	return fr, nil
}

func (r *reporter) addMessage(fr *FileReport, md protoreflect.MessageDescriptor) error {
	// Synthetic map entries have no generated symbol of their own.
	if md.IsMapEntry() {
		return nil
	}

	sr := &SymbolReport{
		SchemaName: string(md.FullName()),
		Kind:       "message",
		Names:      make(map[string]string, len(r.specs)),
	}

	for _, spec := range r.specs {
		name, err := r.resolve(spec.ID, symcache.OpQualifiedName, md.FullName(), func() (string, error) {
			return spec.QualifiedName(md)
		})
		if err != nil {
			return err
		}
		sr.Names[spec.ID] = name
	}

	for i := 0; i < md.Fields().Len(); i++ {
		sr.Fields = append(sr.Fields, r.fieldReport(md.Fields().Get(i)))
	}
	fr.Symbols = append(fr.Symbols, sr)

	if err := r.addExtensions(fr, md.Extensions()); err != nil {
		return err
	}

	for i := 0; i < md.Messages().Len(); i++ {
		if err := r.addMessage(fr, md.Messages().Get(i)); err != nil {
			return err
		}
	}
	for i := 0; i < md.Enums().Len(); i++ {
		if err := r.addEnum(fr, md.Enums().Get(i)); err != nil {
			return err
		}
	}

	return nil
}

func (r *reporter) addEnum(fr *FileReport, ed protoreflect.EnumDescriptor) error {
	sr := &SymbolReport{
		SchemaName: string(ed.FullName()),
		Kind:       "enum",
		Names:      make(map[string]string, len(r.specs)),
	}

	for _, spec := range r.specs {
		name, err := r.resolve(spec.ID, symcache.OpQualifiedName, ed.FullName(), func() (string, error) {
			return spec.QualifiedName(ed)
		})
		if err != nil {
			return err
		}
		sr.Names[spec.ID] = name
	}

	fr.Symbols = append(fr.Symbols, sr)
	return nil
}

func (r *reporter) addExtensions(fr *FileReport, exts protoreflect.ExtensionDescriptors) error {
	for i := 0; i < exts.Len(); i++ {
		ext := exts.Get(i)
		er := &ExtensionReport{
			SchemaName: string(ext.FullName()),
			Accessors:  make(map[string]string, len(r.specs)),
			Paths:      make(map[string]string, len(r.specs)),
		}

		for _, spec := range r.specs {
			path, err := r.resolve(spec.ID, symcache.OpExtensionAccessPath, ext.FullName(), func() (string, error) {
				return spec.ExtensionAccessPath(ext)
			})
			if err != nil {
				return err
			}
			er.Paths[spec.ID] = path
			er.Accessors[spec.ID] = spec.AccessorName(ext)
		}

		fr.Extensions = append(fr.Extensions, er)
	}
	return nil
}

func (r *reporter) fieldReport(fd protoreflect.FieldDescriptor) *FieldReport {
	accessors := make(map[string]string, len(r.specs))
	for _, spec := range r.specs {
		accessors[spec.ID] = spec.AccessorName(fd)
	}

	return &FieldReport{
		Name:               string(fd.Name()),
		Accessors:          accessors,
		Unsigned:           resolver.IsUnsigned(fd),
		WideIntAnnotation:  resolver.HasWideIntAnnotation(fd),
		NeedsPresenceCheck: resolver.NeedsPresenceCheck(fd),
	}
}

// resolve memoizes compute through the cache when one is configured
func (r *reporter) resolve(runtimeID string, op symcache.Op, symbol protoreflect.FullName, compute func() (string, error)) (string, error) {
	if r.cache == nil || symbol == "" {
		return compute()
	}
	return r.cache.Resolve(symcache.Key{Runtime: runtimeID, Op: op, Symbol: symbol}, compute)
}
