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

import "path/filepath"

// ResolvePath returns the file path of a report object relative to the base dir.
// Namespaced objects are placed in a sub dir named after their namespace,
// cluster-scoped objects are placed directly in the base dir.
// Objects sharing the same namespace and name resolve to the same path,
// the last one written wins.
func ResolvePath(base, namespace, name string) string {
	if namespace != "" {
		return filepath.Join(base, namespace, name)
	}
	return filepath.Join(base, name)
}
