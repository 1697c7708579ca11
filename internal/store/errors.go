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
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

var (
	// ErrStoreUnavailable is returned when the Kubernetes API can't be reached,
	// the credentials are rejected or the API server fails the request.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTypeNotFound is returned when the requested resource type
	// is not registered at the requested scope.
	ErrTypeNotFound = errors.New("resource type not found")
)

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// typeNotFound maps API not found errors to ErrTypeNotFound
// and everything else to ErrStoreUnavailable.
func typeNotFound(typeName string, err error) error {
	if apierrors.IsNotFound(err) {
		return fmt.Errorf("%w: %s: %w", ErrTypeNotFound, typeName, err)
	}
	return unavailable(err)
}
