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
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	apiv1 "github.com/stefanprodan/reportdump/api/v1alpha1"
	"github.com/stefanprodan/reportdump/internal/exporter"
	"github.com/stefanprodan/reportdump/internal/logger"
)

var listResourcesCmd = &cobra.Command{
	Use:     "list_resources",
	Aliases: []string{"list-resources"},
	Short:   "Print the reports of the given type found in the cluster",
	Example: `  # List the vulnerability reports in all namespaces
  reportdump list_resources --type vulnerabilityreports --namespaced

  # Print the kubectl commands for inspecting the cluster compliance reports
  reportdump list_resources --type clustercompliancereports -o kubectl
`,
	Args: cobra.NoArgs,
	RunE: runListResourcesCmd,
}

const (
	listOutputTable   = "table"
	listOutputKubectl = "kubectl"
)

type listResourcesFlags struct {
	resourceType string
	namespaced   bool
	output       string
}

var listResourcesArgs listResourcesFlags

func init() {
	listResourcesCmd.Flags().StringVar(&listResourcesArgs.resourceType, "type", "",
		"The report type e.g. 'vulnerabilityreports'.")
	listResourcesCmd.Flags().BoolVar(&listResourcesArgs.namespaced, "namespaced", false,
		"List the reports in all namespaces instead of the cluster-wide ones.")
	listResourcesCmd.Flags().StringVarP(&listResourcesArgs.output, "output", "o", listOutputTable,
		"The format of the list, can be 'table' or 'kubectl'.")
	listResourcesCmd.RegisterFlagCompletionFunc("type", completeResourceTypes)

	rootCmd.AddCommand(listResourcesCmd)
}

func runListResourcesCmd(cmd *cobra.Command, args []string) error {
	target := apiv1.ExportTarget{
		Type:       listResourcesArgs.resourceType,
		Namespaced: listResourcesArgs.namespaced,
	}
	if err := exporter.ValidateTarget(target); err != nil {
		return err
	}

	output := listResourcesArgs.output
	if output == "" {
		output = listOutputTable
	}
	if output != listOutputTable && output != listOutputKubectl {
		return fmt.Errorf("unsupported output '%s', can be '%s' or '%s'", output, listOutputTable, listOutputKubectl)
	}

	log := loggerTarget(cmd.Context(), target.Type, rootArgs.prettyLog)
	e, err := newExporter(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), rootArgs.timeout)
	defer cancel()

	spin := logger.StartSpinner(fmt.Sprintf("fetching %s", target.Type))
	refs, err := e.ListReferences(ctx, target)
	spin.Stop()
	if err != nil {
		return err
	}

	if output == listOutputKubectl {
		for _, ref := range refs {
			cmd.OutOrStdout().Write([]byte(fmt.Sprintf("%s\n", ref.KubectlCommand())))
		}
		return nil
	}

	var rows [][]string
	for _, ref := range refs {
		if target.Namespaced {
			rows = append(rows, []string{ref.Name, ref.Namespace, ref.Type})
		} else {
			rows = append(rows, []string{ref.Name, ref.Type})
		}
	}

	if target.Namespaced {
		printTable(cmd.OutOrStdout(), []string{"name", "namespace", "type"}, rows)
	} else {
		printTable(cmd.OutOrStdout(), []string{"name", "type"}, rows)
	}

	return nil
}

func printTable(writer io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
}
