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
	"errors"
)

var (
	// ErrMissingArgument is returned when the resource type is not specified.
	ErrMissingArgument = errors.New("the required argument is empty")

	// ErrWriteFailed is returned when a report can't be written to disk.
	ErrWriteFailed = errors.New("write failed")

	// ErrInvalidInstance is returned for objects without a name.
	ErrInvalidInstance = errors.New("invalid instance")
)
