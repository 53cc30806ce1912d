// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newReduceCmd, newAllCmd, newOpsCmd, newEnvCmd
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/7blacky7/ndreduce/envconfig"
)

// addInputFlags - Flags zum Einlesen eines Arrays von der Kommandozeile
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("shape", "", "Comma separated dimensions (e.g. 2,3); default is a 1-D array")
	cmd.Flags().String("dtype", envconfig.DefaultDType(), "Element type of the input values")
	cmd.Flags().Int("axis", 0, "Reduce along this axis; negative values count from the end")
	cmd.Flags().Bool("keepdims", false, "Keep the reduced axis with extent 1")
	cmd.Flags().Int("ddof", 0, "Delta degrees of freedom for var and std")
}

// newReduceCmd - Erstellt den reduce Command
func newReduceCmd() *cobra.Command {
	reduceCmd := &cobra.Command{
		Use:   "reduce OP VALUES...",
		Short: "Apply one reduction operator",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ReduceHandler,
	}

	addInputFlags(reduceCmd)
	reduceCmd.Flags().String("out", "", "Output element type (default depends on the operator)")

	return reduceCmd
}

// newAllCmd - Erstellt den all Command
func newAllCmd() *cobra.Command {
	allCmd := &cobra.Command{
		Use:   "all VALUES...",
		Short: "Apply every registered operator",
		RunE:  AllHandler,
	}

	addInputFlags(allCmd)

	return allCmd
}

// newOpsCmd - Erstellt den ops Command
func newOpsCmd() *cobra.Command {
	opsCmd := &cobra.Command{
		Use:     "ops",
		Aliases: []string{"ls"},
		Short:   "List reduction operators",
		Args:    cobra.NoArgs,
		RunE:    OpsHandler,
	}

	opsCmd.Flags().String("dtype", envconfig.DefaultDType(), "Source element type for the default output column")

	return opsCmd
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}
