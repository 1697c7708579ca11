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
	"fmt"

	"k8s.io/apimachinery/pkg/util/json"
	"sigs.k8s.io/yaml"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
)

// Serialize encodes the report payload in the given format.
// A nil payload is encoded as an empty mapping.
func Serialize(payload interface{}, format apiv1.Format) ([]byte, error) {
	if payload == nil {
		payload = map[string]interface{}{}
	}

	switch format {
	case apiv1.FormatYAML:
		return yaml.Marshal(payload)
	case apiv1.FormatJSON:
		return json.Marshal(payload)
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}
}
