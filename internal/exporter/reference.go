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
)

// Reference identifies a report object in the cluster.
type Reference struct {
	Namespace string
	Type      string
	Name      string
}

// KubectlCommand returns the kubectl command that prints the object.
func (r Reference) KubectlCommand() string {
	if r.Namespace != "" {
		return fmt.Sprintf("kubectl -n %s get %s %s -o yaml", r.Namespace, r.Type, r.Name)
	}
	return fmt.Sprintf("kubectl get %s %s -o yaml", r.Type, r.Name)
}

func (r Reference) String() string {
	if r.Namespace != "" {
		return fmt.Sprintf("%s/%s/%s", r.Type, r.Namespace, r.Name)
	}
	return fmt.Sprintf("%s/%s", r.Type, r.Name)
}
