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

package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var (
	// GroupVersion is the default API group and version
	// under which the scan report custom resources are registered.
	GroupVersion = schema.GroupVersion{Group: "aquasecurity.github.io", Version: "v1alpha1"}
)

const (
	// ReportField is the top-level field of a report object holding the scan results.
	ReportField = "report"

	// DefaultOutputDir is the directory where reports are exported by default.
	DefaultOutputDir = "reports"
)

// ResourceType describes a custom resource kind registered under the report API group.
type ResourceType struct {
	// Name is the plural resource name e.g. 'vulnerabilityreports'.
	Name string `json:"name"`

	// Kind is the object kind e.g. 'VulnerabilityReport'.
	Kind string `json:"kind"`

	// Namespaced is true when the instances are scoped to a namespace.
	Namespaced bool `json:"namespaced"`
}

// ExportTarget selects the resource type and scope for a single run.
type ExportTarget struct {
	// Type is the plural resource name.
	Type string `json:"type"`

	// Namespaced selects the namespace scope when true, the cluster scope otherwise.
	Namespaced bool `json:"namespaced"`
}
