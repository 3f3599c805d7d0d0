package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"champstandingsbot/pkg/fragments"
	"champstandingsbot/pkg/journal"
	"champstandingsbot/pkg/report"
	"champstandingsbot/pkg/standings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	version     = "0.1.0"
	reportTitle = "Clasificación del campeonato"
)

var (
	fragmentsDir string
	outputFile   string
	journalFile  string
	quiet        bool
	summary      bool
)

var rootCmd = &cobra.Command{
	Use:           "champstandingsbot",
	Short:         "Aggregates championship standings fragments into a chat-ready report",
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("champstandingsbot v%s\n", version)
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent report runs from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := journal.NewManager(journalFile)
		if err != nil {
			return err
		}
		defer m.Close()

		runs, err := m.ListRecentRuns(10)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Printf("%s  fragmentos=%d clases=%d pilotos=%d ➡ %s\n",
				r.Timestamp.Format(time.RFC3339), r.Fragments, r.Classes, r.Drivers, r.Output)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&fragmentsDir, "fragments", "./fragments", "directory containing standings fragment files")
	rootCmd.Flags().StringVar(&outputFile, "output", "./report.txt", "file to write the formatted report to")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "do not echo the report to the console")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "print a per-class summary table to the console")
	rootCmd.PersistentFlags().StringVar(&journalFile, "journal", journal.DbName, "sqlite file for the run journal")
	rootCmd.AddCommand(versionCmd, runsCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	classes, files, err := fragments.Load(fragmentsDir)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d class blocks from %d fragment files in %s", len(classes), files, fragmentsDir)

	aggregated := standings.Aggregate(classes)

	content := report.Render(reportTitle, aggregated)
	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "writing report to %q", outputFile)
	}
	log.Printf("Report written to %s", outputFile)

	if !quiet {
		fmt.Println(content)
	}
	if summary {
		report.Summary(os.Stdout, aggregated)
	}

	// Journal failures never fail the run, the report is already out.
	recordRun(files, aggregated)

	return nil
}

func recordRun(files int, classes []standings.ClassStandings) {
	m, err := journal.NewManager(journalFile)
	if err != nil {
		log.Printf("Journal disabled: %s", err.Error())
		return
	}
	defer m.Close()

	drivers := 0
	for _, c := range classes {
		drivers += len(c.Standings)
	}
	err = m.RecordRun(journal.Run{
		Timestamp: time.Now(),
		Fragments: files,
		Classes:   len(classes),
		Drivers:   drivers,
		Output:    outputFile,
	})
	if err != nil {
		log.Printf("Error recording run: %s", err.Error())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("An error occured: %s", err.Error())
		os.Exit(1)
	}
}
