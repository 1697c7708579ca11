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
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/stefanprodan/reportdump/internal/exporter"
	"github.com/stefanprodan/reportdump/internal/store"
)

// newStore connects to the cluster selected by the kubeconfig flags.
// Tests replace it with a store backed by fake clients.
var newStore = func(gv schema.GroupVersion) (exporter.Store, error) {
	opts := store.DefaultOptions()
	opts.GroupVersion = gv

	s, err := store.NewKubeStore(kubeconfigArgs, opts)
	if err != nil {
		return nil, fmt.Errorf("client init failed: %w", err)
	}
	return s, nil
}

func newExporter(log logr.Logger) (*exporter.Exporter, error) {
	s, err := newStore(rootArgs.apiVersion.GroupVersion())
	if err != nil {
		return nil, err
	}

	return exporter.New(s, exporter.Options{
		OutputDir: rootArgs.outputDir,
		Logger:    log,
	}), nil
}
