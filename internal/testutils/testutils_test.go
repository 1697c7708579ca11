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

package testutils

import (
	"io"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

type testStruct struct{}

func (t *testStruct) TestMethod() {}

func TestImplement(t *testing.T) {
	g := NewWithT(t)

	type truthteller interface {
		TestMethod()
	}

	type liar interface {
		NotTestMethod()
	}

	a := &testStruct{}

	g.Expect(a).To(Implement((*truthteller)(nil)))
	g.Expect(a).ToNot(Implement((*liar)(nil)))
	g.Expect(a).ToNot(Implement((*io.Writer)(nil)))

	success, err := Implement(truthteller(nil)).Match(a)
	g.Expect(err).To(HaveOccurred())
	g.Expect(success).To(BeFalse())
}

func TestListFiles(t *testing.T) {
	g := NewWithT(t)
	fs := afero.NewMemMapFs()
	g.Expect(afero.WriteFile(fs, "reports/ns-b/r2", []byte("{}"), 0o644)).To(Succeed())
	g.Expect(afero.WriteFile(fs, "reports/ns-a/r1", []byte("{}"), 0o644)).To(Succeed())
	g.Expect(afero.WriteFile(fs, "reports/cis", []byte("{}"), 0o644)).To(Succeed())
	g.Expect(fs.MkdirAll("reports/empty", 0o755)).To(Succeed())

	files, err := ListFiles(fs, "reports")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(files).To(Equal([]string{
		filepath.Join("reports", "cis"),
		filepath.Join("reports", "ns-a", "r1"),
		filepath.Join("reports", "ns-b", "r2"),
	}))

	files, err = ListFiles(fs, "missing")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(files).To(BeEmpty())
}
