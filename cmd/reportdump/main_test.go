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

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/mattn/go-shellwords"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	apiruntime "k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	discoveryfake "k8s.io/client-go/discovery/fake"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	clienttesting "k8s.io/client-go/testing"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
	"github.com/stefanprodan/reportdump/internal/exporter"
	"github.com/stefanprodan/reportdump/internal/logger"
	"github.com/stefanprodan/reportdump/internal/store"
)

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// testCluster holds the objects served by the fake clients.
type testCluster struct {
	kubeObjects []client.Object
	resources   []metav1.APIResource
	reports     []apiruntime.Object

	// storeCalls counts the store constructions.
	storeCalls int
}

func newTestCluster() *testCluster {
	return &testCluster{
		resources: []metav1.APIResource{
			{Name: "vulnerabilityreports", Kind: "VulnerabilityReport", Namespaced: true},
			{Name: "configauditreports", Kind: "ConfigAuditReport", Namespaced: true},
			{Name: "clustercompliancereports", Kind: "ClusterComplianceReport", Namespaced: false},
		},
	}
}

func (c *testCluster) withNamespaces(names ...string) *testCluster {
	for _, name := range names {
		c.kubeObjects = append(c.kubeObjects, &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}})
	}
	return c
}

func (c *testCluster) withReport(kind, namespace, name string, report map[string]interface{}) *testCluster {
	u := &unstructured.Unstructured{Object: map[string]interface{}{}}
	u.SetAPIVersion(apiv1.GroupVersion.String())
	u.SetKind(kind)
	u.SetName(name)
	u.SetNamespace(namespace)
	if report != nil {
		u.Object[apiv1.ReportField] = report
	}
	c.reports = append(c.reports, u)
	return c
}

// install replaces the store constructor with one backed by fake clients.
func (c *testCluster) install(t *testing.T) {
	t.Helper()
	scheme := apiruntime.NewScheme()
	_ = corev1.AddToScheme(scheme)

	kubeClient := fake.NewClientBuilder().WithScheme(scheme).WithObjects(c.kubeObjects...).Build()
	discoveryClient := &discoveryfake.FakeDiscovery{Fake: &clienttesting.Fake{
		Resources: []*metav1.APIResourceList{
			{GroupVersion: apiv1.GroupVersion.String(), APIResources: c.resources},
		},
	}}
	dynamicClient := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(apiruntime.NewScheme(),
		map[schema.GroupVersionResource]string{
			apiv1.GroupVersion.WithResource("vulnerabilityreports"):     "VulnerabilityReportList",
			apiv1.GroupVersion.WithResource("configauditreports"):       "ConfigAuditReportList",
			apiv1.GroupVersion.WithResource("clustercompliancereports"): "ClusterComplianceReportList",
		}, c.reports...)

	previous := newStore
	newStore = func(gv schema.GroupVersion) (exporter.Store, error) {
		c.storeCalls++
		opts := store.DefaultOptions()
		opts.GroupVersion = gv
		return store.NewKubeStoreForClients(kubeClient, discoveryClient, dynamicClient, opts), nil
	}
	t.Cleanup(func() {
		newStore = previous
	})
}

func executeCommand(cmd string) (string, error) {
	defer resetCmdArgs()
	args, err := shellwords.Parse(cmd)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)

	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	cliLogger = logger.NewConsoleLogger(logger.Options{Out: buf})

	_, err = rootCmd.ExecuteC()
	result := buf.String()

	return result, err
}

func resetCmdArgs() {
	resourceTypesArgs = resourceTypesFlags{}
	listResourcesArgs = listResourcesFlags{}
	dumpResourcesArgs = dumpResourcesFlags{}
	versionArgs = versionFlags{}
	rootArgs.apiVersion = ""
}
