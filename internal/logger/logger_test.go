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

package logger

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func TestNewConsoleLogger(t *testing.T) {
	t.Run("info only", func(t *testing.T) {
		g := NewWithT(t)
		var buf bytes.Buffer
		log := NewConsoleLogger(Options{Out: &buf})

		log.Info("exported 2 reports")
		log.V(1).Info("listing namespaces")

		g.Expect(buf.String()).To(ContainSubstring("exported 2 reports"))
		g.Expect(buf.String()).ToNot(ContainSubstring("listing namespaces"))
		g.Expect(buf.String()).ToNot(ContainSubstring("INF"))
	})

	t.Run("debug", func(t *testing.T) {
		g := NewWithT(t)
		var buf bytes.Buffer
		log := NewConsoleLogger(Options{Out: &buf, Debug: true, Prettify: true})

		log.V(1).Info("listing namespaces")

		g.Expect(buf.String()).To(ContainSubstring("listing namespaces"))
		g.Expect(buf.String()).To(ContainSubstring("DBG"))
	})

	t.Run("error", func(t *testing.T) {
		g := NewWithT(t)
		var buf bytes.Buffer
		log := NewConsoleLogger(Options{Out: &buf, Prettify: true})

		log.Error(errors.New("store unavailable"), "dump failed")

		g.Expect(buf.String()).To(ContainSubstring("ERR"))
		g.Expect(buf.String()).To(ContainSubstring("store unavailable"))
	})
}

func TestColorize(t *testing.T) {
	g := NewWithT(t)
	NewConsoleLogger(Options{Out: &bytes.Buffer{}, Colorize: false})

	g.Expect(ColorizeType("vulnerabilityreports")).To(Equal("t:vulnerabilityreports"))
	g.Expect(ColorizePath("reports/ns-a/r1")).To(Equal("reports/ns-a/r1"))
	g.Expect(ColorizeWarning("no reports found")).To(Equal("no reports found"))
}
