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

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
	"github.com/stefanprodan/reportdump/internal/exporter"
	"github.com/stefanprodan/reportdump/internal/flags"
	"github.com/stefanprodan/reportdump/internal/logger"
)

var dumpResourcesCmd = &cobra.Command{
	Use:     "dump_resources",
	Aliases: []string{"dump-resources"},
	Short:   "Write the reports of the given type to disk",
	Long: `The dump_resources command writes the report payload of each object to
<output-dir>/<namespace>/<name> for namespaced reports and to <output-dir>/<name>
for cluster-wide reports. Existing files are overwritten.`,
	Example: `  # Export the vulnerability reports from all namespaces as YAML
  reportdump dump_resources --type vulnerabilityreports --namespaced

  # Export the cluster compliance reports as JSON to a custom dir
  reportdump dump_resources --type clustercompliancereports --format json --output-dir ./audit
`,
	Args: cobra.NoArgs,
	RunE: runDumpResourcesCmd,
}

type dumpResourcesFlags struct {
	resourceType string
	namespaced   bool
	format       flags.Format
}

var dumpResourcesArgs dumpResourcesFlags

func init() {
	dumpResourcesCmd.Flags().StringVar(&dumpResourcesArgs.resourceType, "type", "",
		"The report type e.g. 'vulnerabilityreports'.")
	dumpResourcesCmd.Flags().BoolVar(&dumpResourcesArgs.namespaced, "namespaced", false,
		"Export the reports from all namespaces instead of the cluster-wide ones.")
	dumpResourcesCmd.Flags().VarP(&dumpResourcesArgs.format, "format", dumpResourcesArgs.format.Shorthand(), dumpResourcesArgs.format.Description())
	dumpResourcesCmd.RegisterFlagCompletionFunc("type", completeResourceTypes)

	rootCmd.AddCommand(dumpResourcesCmd)
}

func runDumpResourcesCmd(cmd *cobra.Command, args []string) error {
	target := apiv1.ExportTarget{
		Type:       dumpResourcesArgs.resourceType,
		Namespaced: dumpResourcesArgs.namespaced,
	}
	if err := exporter.ValidateTarget(target); err != nil {
		return err
	}

	log := loggerTarget(cmd.Context(), target.Type, rootArgs.prettyLog)
	e, err := newExporter(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), rootArgs.timeout)
	defer cancel()

	count, err := e.Export(ctx, target, dumpResourcesArgs.format.Value())
	if err != nil {
		return fmt.Errorf("export failed after %d report(s): %w", count, err)
	}

	if count == 0 {
		log.Info(logger.ColorizeWarning(fmt.Sprintf("no %s found", target.Type)))
		return nil
	}

	log.Info(fmt.Sprintf("exported %d report(s) to %s", count, logger.ColorizePath(e.OutputDir())))

	return nil
}
