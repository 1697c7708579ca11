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

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resourceTypesCmd = &cobra.Command{
	Use:     "resource_types",
	Aliases: []string{"resource-types"},
	Short:   "Print the report types registered in the cluster",
	Example: `  # List the namespaced report types e.g. vulnerabilityreports
  reportdump resource_types --namespaced

  # List the cluster-wide report types e.g. clustercompliancereports
  reportdump resource_types
`,
	Args: cobra.NoArgs,
	RunE: runResourceTypesCmd,
}

type resourceTypesFlags struct {
	namespaced bool
}

var resourceTypesArgs resourceTypesFlags

func init() {
	resourceTypesCmd.Flags().BoolVar(&resourceTypesArgs.namespaced, "namespaced", false,
		"List the namespaced report types instead of the cluster-wide ones.")

	rootCmd.AddCommand(resourceTypesCmd)
}

func runResourceTypesCmd(cmd *cobra.Command, args []string) error {
	log := LoggerFrom(cmd.Context())
	log.V(1).Info(fmt.Sprintf("namespaced set: %v", resourceTypesArgs.namespaced))

	e, err := newExporter(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), rootArgs.timeout)
	defer cancel()

	names, err := e.ListResourceTypeNames(ctx, resourceTypesArgs.namespaced)
	if err != nil {
		return err
	}

	for _, name := range names {
		cmd.OutOrStdout().Write([]byte(fmt.Sprintf("%s\n", name)))
	}

	return nil
}
