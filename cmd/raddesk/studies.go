package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk/search"
	"github.com/raddesk/raddesk/types"
)

var flagStudyStatus string

var studiesCmd = &cobra.Command{
	Use:   "studies",
	Short: "Browse the study worklist",
}

var studiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List studies, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		studies := app.Studies.Items()
		if flagStudyStatus != "" {
			studies = app.Studies.Filter(func(s *types.Study) bool {
				return string(s.Status) == flagStudyStatus
			})
		}
		printStudies(studies)
		return nil
	},
}

var studiesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search studies by patient, modality, body part or accession",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudiesSearch,
}

// studyFieldNames labels the positions of Study.SearchText for match
// reporting.
var studyFieldNames = []string{"patient", "modality", "body part", "accession"}

func runStudiesSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPATIENT\tMODALITY\tBODY PART\tSTATUS\tMATCHED ON")
	for _, s := range app.Studies.Search(query) {
		names := make([]string, 0, len(studyFieldNames))
		for _, m := range search.FindMatches(query, s.SearchText()) {
			names = append(names, studyFieldNames[m.Field])
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(s.UUID()), s.StudyDate, s.PatientName, s.Modality,
			s.BodyPart, s.Status, strings.Join(names, ", "))
	}
	w.Flush()
	return nil
}

func init() {
	studiesListCmd.Flags().StringVar(&flagStudyStatus, "status", "", "filter by study status")

	studiesCmd.AddCommand(studiesListCmd)
	studiesCmd.AddCommand(studiesSearchCmd)
}

func printStudies(studies []*types.Study) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPATIENT\tMODALITY\tBODY PART\tSTATUS\tREPORT")
	for _, s := range studies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(s.UUID()), s.StudyDate, s.PatientName, s.Modality,
			s.BodyPart, s.Status, s.EffectiveReportStatus())
	}
	w.Flush()
}
