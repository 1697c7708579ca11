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

package flags

import (
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/runtime/schema"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
)

var _ pflag.Value = (*APIVersion)(nil)

type APIVersion string

func (f *APIVersion) String() string {
	if *f == "" {
		return f.Default()
	}
	return string(*f)
}

func (f *APIVersion) Set(str string) error {
	gv, err := schema.ParseGroupVersion(str)
	if err != nil {
		return err
	}
	if gv.Group == "" || gv.Version == "" {
		return fmt.Errorf("API version must be in the format <group>/<version>")
	}
	*f = APIVersion(gv.String())
	return nil
}

func (f *APIVersion) Type() string {
	return "apiVersion"
}

func (f *APIVersion) Default() string {
	return apiv1.GroupVersion.String()
}

func (f *APIVersion) Description() string {
	return "The API group and version of the report custom resources."
}

// GroupVersion returns the parsed group version or the default one if none was set.
func (f *APIVersion) GroupVersion() schema.GroupVersion {
	gv, err := schema.ParseGroupVersion(f.String())
	if err != nil {
		return apiv1.GroupVersion
	}
	return gv
}
