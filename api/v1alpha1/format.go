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

import "fmt"

// Format is the encoding used when writing a report payload to disk.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatYAML

// SupportedFormats lists the accepted encodings.
var SupportedFormats = []Format{FormatYAML, FormatJSON}

// ParseFormat returns the Format matching s or an error if s is not supported.
func ParseFormat(s string) (Format, error) {
	for _, f := range SupportedFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format '%s', must be one of %v", s, SupportedFormats)
}
