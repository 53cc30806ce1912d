// cmd_list.go - Ops und Env Commands
// Hauptfunktionen: OpsHandler, EnvHandler
package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/7blacky7/ndreduce/envconfig"
	"github.com/7blacky7/ndreduce/ml"
	"github.com/7blacky7/ndreduce/ml/reduce"
)

// renderTable - Gibt Zeilen im Listen-Layout aus
func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}

// OpsHandler - Listet alle registrierten Operatoren auf
func OpsHandler(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("dtype")
	src, err := ml.ParseDType(name)
	if err != nil {
		return err
	}

	var data [][]string
	for _, op := range reduce.Operators() {
		data = append(data, []string{op.Name, op.Description, op.DefaultDType(src).String()})
	}

	renderTable(cmd.OutOrStdout(), []string{"NAME", "DESCRIPTION", "DEFAULT DTYPE"}, data)
	return nil
}

// EnvHandler - Listet die Environment-Konfiguration auf
func EnvHandler(cmd *cobra.Command, args []string) error {
	envs := envconfig.AsMap()

	var data [][]string
	for _, k := range slices.Sorted(maps.Keys(envs)) {
		e := envs[k]
		data = append(data, []string{e.Name, fmt.Sprintf("%v", e.Value), e.Description})
	}

	renderTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"}, data)
	return nil
}
