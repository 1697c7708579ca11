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
	"github.com/spf13/pflag"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
)

var _ pflag.Value = (*Format)(nil)

type Format string

func (f *Format) String() string {
	if *f == "" {
		return f.Default()
	}
	return string(*f)
}

func (f *Format) Set(str string) error {
	format, err := apiv1.ParseFormat(str)
	if err != nil {
		return err
	}
	*f = Format(format)
	return nil
}

func (f *Format) Type() string {
	return "format"
}

func (f *Format) Default() string {
	return string(apiv1.DefaultFormat)
}

func (f *Format) Shorthand() string {
	return "f"
}

func (f *Format) Description() string {
	return "The encoding of the exported reports, can be 'yaml' or 'json'."
}

// Value returns the selected format or the default one if none was set.
func (f *Format) Value() apiv1.Format {
	if *f == "" {
		return apiv1.DefaultFormat
	}
	return apiv1.Format(*f)
}
