// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/7blacky7/ndreduce/envconfig"
)

// version wird beim Build per -ldflags gesetzt
var version = "dev"

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "ndreduce",
		Short:         "Reduce N-dimensional arrays along an axis",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "ndreduce version is %s\n", version)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	// Commands erstellen
	reduceCmd := newReduceCmd()
	allCmd := newAllCmd()
	opsCmd := newOpsCmd()
	envCmd := newEnvCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	for _, cmd := range []*cobra.Command{reduceCmd, allCmd} {
		appendEnvDocs(cmd, []envconfig.EnvVar{
			envVars["NDREDUCE_DEBUG"],
			envVars["NDREDUCE_DEFAULT_DTYPE"],
			envVars["NDREDUCE_STRICT_WALKERS"],
			envVars["NDREDUCE_PRECISION"],
			envVars["NDREDUCE_PRINT_THRESHOLD"],
			envVars["NDREDUCE_EDGE_ITEMS"],
		})
	}
	appendEnvDocs(opsCmd, []envconfig.EnvVar{envVars["NDREDUCE_DEFAULT_DTYPE"]})

	rootCmd.AddCommand(
		reduceCmd,
		allCmd,
		opsCmd,
		envCmd,
	)

	return rootCmd
}
