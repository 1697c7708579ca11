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

package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	apiruntime "k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
)

const defaultPageSize = 500

// Options holds the configuration of a KubeStore.
type Options struct {
	// GroupVersion is the API group and version of the report types.
	GroupVersion schema.GroupVersion

	// PageSize is the maximum number of objects fetched per list call.
	PageSize int64

	// QPS and Burst override the client rate limits when set.
	QPS   float32
	Burst int
}

// DefaultOptions returns the options for the Trivy report API.
func DefaultOptions() Options {
	return Options{
		GroupVersion: apiv1.GroupVersion,
		PageSize:     defaultPageSize,
		QPS:          50,
		Burst:        100,
	}
}

// KubeStore reads namespaces, report types and report objects from a Kubernetes cluster.
// Namespaces are read with the controller-runtime client, the report types with
// the discovery client and the report objects with the dynamic client.
// The resources served by the report group version are discovered once
// per KubeStore.
type KubeStore struct {
	kubeClient      client.Client
	discoveryClient discovery.DiscoveryInterface
	dynamicClient   dynamic.Interface
	opts            Options

	mu        sync.Mutex
	resources []metav1.APIResource
	loaded    bool
}

// NewKubeStore creates a KubeStore for the cluster selected by the given REST client getter.
func NewKubeStore(rcg genericclioptions.RESTClientGetter, opts Options) (*KubeStore, error) {
	cfg, err := rcg.ToRESTConfig()
	if err != nil {
		return nil, fmt.Errorf("loading kubeconfig failed: %w", err)
	}

	// bump limits
	if opts.QPS > 0 {
		cfg.QPS = opts.QPS
	}
	if opts.Burst > 0 {
		cfg.Burst = opts.Burst
	}

	kubeClient, err := client.New(cfg, client.Options{Scheme: defaultScheme()})
	if err != nil {
		return nil, fmt.Errorf("kubernetes client initialization failed: %w", err)
	}

	discoveryClient, err := rcg.ToDiscoveryClient()
	if err != nil {
		return nil, fmt.Errorf("kubernetes discovery client initialization failed: %w", err)
	}
	// skip the on-disk cache of previous runs
	discoveryClient.Invalidate()

	dynamicClient, err := dynamic.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("kubernetes dynamic client initialization failed: %w", err)
	}

	return NewKubeStoreForClients(kubeClient, discoveryClient, dynamicClient, opts), nil
}

// NewKubeStoreForClients creates a KubeStore from existing clients.
func NewKubeStoreForClients(kubeClient client.Client,
	discoveryClient discovery.DiscoveryInterface,
	dynamicClient dynamic.Interface,
	opts Options) *KubeStore {
	if opts.GroupVersion.Empty() {
		opts.GroupVersion = apiv1.GroupVersion
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	return &KubeStore{
		kubeClient:      kubeClient,
		discoveryClient: discoveryClient,
		dynamicClient:   dynamicClient,
		opts:            opts,
	}
}

// GroupVersion returns the API group and version of the report types.
func (s *KubeStore) GroupVersion() schema.GroupVersion {
	return s.opts.GroupVersion
}

// ListNamespaces returns the names of all namespaces in the cluster.
func (s *KubeStore) ListNamespaces(ctx context.Context) ([]string, error) {
	nsList := &corev1.NamespaceList{}
	if err := s.kubeClient.List(ctx, nsList); err != nil {
		return nil, unavailable(fmt.Errorf("failed to list namespaces: %w", err))
	}

	res := make([]string, 0, len(nsList.Items))
	for _, ns := range nsList.Items {
		res = append(res, ns.GetName())
	}
	return res, nil
}

// ListResourceTypes returns the resource types served by the report
// group version whose scope matches the namespaced filter.
// A group version that isn't served results in an empty list.
func (s *KubeStore) ListResourceTypes(ctx context.Context, namespaced bool) ([]apiv1.ResourceType, error) {
	resources, err := s.serverResources()
	if err != nil {
		return nil, err
	}

	var res []apiv1.ResourceType
	for _, r := range resources {
		if r.Namespaced == namespaced {
			res = append(res, apiv1.ResourceType{
				Name:       r.Name,
				Kind:       r.Kind,
				Namespaced: r.Namespaced,
			})
		}
	}
	return res, nil
}

// ListClusterInstances returns all the objects of the given cluster-scoped type.
func (s *KubeStore) ListClusterInstances(ctx context.Context, typeName string) ([]unstructured.Unstructured, error) {
	gvr, err := s.resolve(typeName, false)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, typeName, s.dynamicClient.Resource(gvr))
}

// ListNamespacedInstances returns the objects of the given namespaced type found in a namespace.
// An empty namespace results in an empty list.
func (s *KubeStore) ListNamespacedInstances(ctx context.Context, namespace, typeName string) ([]unstructured.Unstructured, error) {
	gvr, err := s.resolve(typeName, true)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, typeName, s.dynamicClient.Resource(gvr).Namespace(namespace))
}

// resolve verifies that the report group version serves
// the given type at the requested scope.
func (s *KubeStore) resolve(typeName string, namespaced bool) (schema.GroupVersionResource, error) {
	gvr := s.opts.GroupVersion.WithResource(typeName)

	resources, err := s.serverResources()
	if err != nil {
		return gvr, err
	}

	for _, r := range resources {
		if r.Name != typeName {
			continue
		}
		if r.Namespaced != namespaced {
			scope := "cluster-scoped"
			if r.Namespaced {
				scope = "namespaced"
			}
			return gvr, fmt.Errorf("%w: %s is %s", ErrTypeNotFound, typeName, scope)
		}
		return gvr, nil
	}

	return gvr, fmt.Errorf("%w: %s is not served by %s", ErrTypeNotFound, typeName, s.opts.GroupVersion)
}

// serverResources returns the resources served by the report group version,
// excluding subresources. The discovery call is made only once.
func (s *KubeStore) serverResources() ([]metav1.APIResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.resources, nil
	}

	list, err := s.discoveryClient.ServerResourcesForGroupVersion(s.opts.GroupVersion.String())
	if err != nil && !apierrors.IsNotFound(err) {
		return nil, unavailable(fmt.Errorf("failed to discover %s resources: %w", s.opts.GroupVersion, err))
	}

	var resources []metav1.APIResource
	if list != nil {
		for _, r := range list.APIResources {
			if strings.Contains(r.Name, "/") {
				continue
			}
			resources = append(resources, r)
		}
	}

	s.resources = resources
	s.loaded = true
	return resources, nil
}

// list fetches all pages of a resource collection.
func (s *KubeStore) list(ctx context.Context, typeName string, ri dynamic.ResourceInterface) ([]unstructured.Unstructured, error) {
	var res []unstructured.Unstructured

	continueToken := ""
	for {
		l, err := ri.List(ctx, metav1.ListOptions{
			Limit:    s.opts.PageSize,
			Continue: continueToken,
		})
		if err != nil {
			return nil, typeNotFound(typeName, err)
		}
		res = append(res, l.Items...)
		continueToken = l.GetContinue()
		if continueToken == "" {
			break
		}
	}

	return res, nil
}

func defaultScheme() *apiruntime.Scheme {
	scheme := apiruntime.NewScheme()
	_ = corev1.AddToScheme(scheme)
	return scheme
}
