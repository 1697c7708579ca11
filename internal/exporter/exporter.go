/*
Copyright 2024 Stefan Prodan

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package exporter

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
)

// Store is the read-only view of the cluster used by the Exporter.
type Store interface {
	ListNamespaces(ctx context.Context) ([]string, error)
	ListResourceTypes(ctx context.Context, namespaced bool) ([]apiv1.ResourceType, error)
	ListClusterInstances(ctx context.Context, typeName string) ([]unstructured.Unstructured, error)
	ListNamespacedInstances(ctx context.Context, namespace, typeName string) ([]unstructured.Unstructured, error)
}

// Options holds the configuration of an Exporter.
type Options struct {
	// OutputDir is the root of the exported reports tree.
	OutputDir string

	// FS is the filesystem the reports are written to, defaults to the OS filesystem.
	FS afero.Fs

	// Logger defaults to a discard logger.
	Logger logr.Logger
}

// Exporter enumerates report objects and writes their payload to disk.
type Exporter struct {
	store     Store
	fs        afero.Afero
	outputDir string
	log       logr.Logger
}

// New creates an Exporter reading from the given store.
func New(store Store, opts Options) *Exporter {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = apiv1.DefaultOutputDir
	}
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	return &Exporter{
		store:     store,
		fs:        afero.Afero{Fs: opts.FS},
		outputDir: opts.OutputDir,
		log:       opts.Logger,
	}
}

// OutputDir returns the root of the exported reports tree.
func (e *Exporter) OutputDir() string {
	return e.outputDir
}

// ListResourceTypeNames returns the names of the report types matching the scope.
func (e *Exporter) ListResourceTypeNames(ctx context.Context, namespaced bool) ([]string, error) {
	e.log.V(1).Info("listing resource types", "namespaced", namespaced)
	types, err := e.store.ListResourceTypes(ctx, namespaced)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return names, nil
}

// ValidateTarget returns ErrMissingArgument if the target has no resource type.
func ValidateTarget(target apiv1.ExportTarget) error {
	if target.Type == "" {
		return fmt.Errorf("resource type: %w", ErrMissingArgument)
	}
	return nil
}

// EnumerateInstances returns a sequence of the objects matching the target.
// For namespaced targets the namespaces are visited one at a time in the order
// returned by the store. The sequence stops at the first store error.
func (e *Exporter) EnumerateInstances(ctx context.Context, target apiv1.ExportTarget) (iter.Seq2[*unstructured.Unstructured, error], error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}

	if !target.Namespaced {
		return func(yield func(*unstructured.Unstructured, error) bool) {
			e.log.V(1).Info("listing cluster objects", "type", target.Type)
			items, err := e.store.ListClusterInstances(ctx, target.Type)
			if err != nil {
				yield(nil, err)
				return
			}
			for i := range items {
				if !yield(&items[i], nil) {
					return
				}
			}
		}, nil
	}

	return func(yield func(*unstructured.Unstructured, error) bool) {
		e.log.V(1).Info("listing namespaces")
		namespaces, err := e.store.ListNamespaces(ctx)
		if err != nil {
			yield(nil, err)
			return
		}

		for _, ns := range namespaces {
			e.log.V(1).Info("listing namespaced objects", "namespace", ns, "type", target.Type)
			items, err := e.store.ListNamespacedInstances(ctx, ns, target.Type)
			if err != nil {
				yield(nil, err)
				return
			}
			for i := range items {
				if !yield(&items[i], nil) {
					return
				}
			}
		}
	}, nil
}

// ExportInstance writes the report payload of the given object to disk
// and returns the path of the written file. Existing files are overwritten.
func (e *Exporter) ExportInstance(obj *unstructured.Unstructured, format apiv1.Format) (string, error) {
	if obj.GetName() == "" {
		return "", fmt.Errorf("%w: %s object in namespace '%s' has no name",
			ErrInvalidInstance, obj.GetKind(), obj.GetNamespace())
	}

	path := ResolvePath(e.outputDir, obj.GetNamespace(), obj.GetName())

	payload, _, err := unstructured.NestedFieldNoCopy(obj.Object, apiv1.ReportField)
	if err != nil {
		return path, fmt.Errorf("%w %s: invalid report field: %w", ErrWriteFailed, path, err)
	}

	data, err := Serialize(payload, format)
	if err != nil {
		return path, fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}

	if err := e.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}

	if err := e.fs.WriteFile(path, data, os.FileMode(0o644)); err != nil {
		return path, fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}

	return path, nil
}

// Export writes the report payload of every object matching the target
// and returns the number of files written. The first error aborts the export.
func (e *Exporter) Export(ctx context.Context, target apiv1.ExportTarget, format apiv1.Format) (int, error) {
	objects, err := e.EnumerateInstances(ctx, target)
	if err != nil {
		return 0, err
	}

	count := 0
	for obj, err := range objects {
		if err != nil {
			return count, err
		}

		path, err := e.ExportInstance(obj, format)
		if err != nil {
			return count, err
		}
		e.log.Info(fmt.Sprintf("dump %s", path))
		count++
	}

	return count, nil
}

// ListReferences returns a reference to every object matching the target.
func (e *Exporter) ListReferences(ctx context.Context, target apiv1.ExportTarget) ([]Reference, error) {
	objects, err := e.EnumerateInstances(ctx, target)
	if err != nil {
		return nil, err
	}

	var refs []Reference
	for obj, err := range objects {
		if err != nil {
			return nil, err
		}
		refs = append(refs, Reference{
			Namespace: obj.GetNamespace(),
			Type:      target.Type,
			Name:      obj.GetName(),
		})
	}
	return refs, nil
}
