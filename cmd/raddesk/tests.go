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

var (
	flagModality string
	flagBodyPart string
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Browse the exam catalog",
}

var testsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog exams, optionally filtered by modality or body part",
	RunE:  runTestsList,
}

var testsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by name, description, modality or body part",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestsSearch,
}

func init() {
	testsListCmd.Flags().StringVar(&flagModality, "modality", "", "filter by modality (CT, MRI, X-Ray, ...)")
	testsListCmd.Flags().StringVar(&flagBodyPart, "body-part", "", "filter by body part")

	testsCmd.AddCommand(testsListCmd)
	testsCmd.AddCommand(testsSearchCmd)
}

func runTestsList(cmd *cobra.Command, args []string) error {
	var exams []*types.RadiologyTest
	switch {
	case flagModality != "":
		exams = app.FilterTestsByModality(types.Modality(flagModality))
	case flagBodyPart != "":
		exams = app.FilterTestsByBodyPart(flagBodyPart)
	default:
		exams = app.Tests.Items()
	}
	printTests(exams)
	return nil
}

func runTestsSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMODALITY\tBODY PART\tDURATION\tPRICE")
	for _, e := range app.SearchTests(query) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dm\t$%.2f\n",
			shortID(e.UUID()), search.Highlight(e.Name, query, "[", "]"),
			e.Modality, search.Highlight(e.BodyPart, query, "[", "]"),
			e.Duration, e.Price)
	}
	w.Flush()
	return nil
}

func printTests(exams []*types.RadiologyTest) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMODALITY\tBODY PART\tDURATION\tPRICE")
	for _, e := range exams {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dm\t$%.2f\n",
			shortID(e.UUID()), e.Name, e.Modality, e.BodyPart, e.Duration, e.Price)
	}
	w.Flush()
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchesID accepts a full UUID or a prefix of at least 4 characters, so
// the truncated ids printed in tables can be pasted back into commands.
func matchesID(id, arg string) bool {
	if id == arg {
		return true
	}
	return len(arg) >= 4 && strings.HasPrefix(id, arg)
}
