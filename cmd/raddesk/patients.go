package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk/types"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Manage registered patients",
}

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered patients",
	RunE: func(cmd *cobra.Command, args []string) error {
		printPatients(app.Patients.Items())
		return nil
	},
}

var patientsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search patients by name or MRN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printPatients(app.Patients.Search(args[0]))
		return nil
	},
}

var patientsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one patient with their appointments and studies",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatientsShow,
}

func init() {
	patientsCmd.AddCommand(patientsListCmd)
	patientsCmd.AddCommand(patientsSearchCmd)
	patientsCmd.AddCommand(patientsShowCmd)
}

func runPatientsShow(cmd *cobra.Command, args []string) error {
	p := findPatient(args[0])
	if p == nil {
		return fmt.Errorf("no patient matches %q", args[0])
	}

	fmt.Printf("%s (%s)\n", p.Name, p.PatientID)
	if p.DOB != "" {
		fmt.Printf("  DOB: %s\n", p.DOB)
	}
	if p.ContactNumber != "" {
		fmt.Printf("  Contact: %s\n", p.ContactNumber)
	}
	if len(p.Allergies) > 0 {
		fmt.Printf("  Allergies: %s\n", strings.Join(p.Allergies, ", "))
	}

	appts := app.PatientAppointments(p.UUID())
	if len(appts) > 0 {
		fmt.Println("\nAppointments:")
		for _, a := range appts {
			fmt.Printf("  %s %s  %s  [%s]\n", a.Date, a.Time, a.TestName, a.Status)
		}
	}
	studies := app.PatientStudies(p.UUID())
	if len(studies) > 0 {
		fmt.Println("\nStudies:")
		for _, s := range studies {
			fmt.Printf("  %s  %s %s  report: %s\n",
				s.StudyDate, s.Modality, s.BodyPart, s.EffectiveReportStatus())
		}
	}
	return nil
}

// findPatient resolves an id argument against the patient collection,
// accepting a full UUID, a unique UUID prefix, or an exact MRN.
func findPatient(arg string) *types.Patient {
	var match *types.Patient
	for _, p := range app.Patients.Items() {
		if p.UUID() == arg || p.PatientID == arg {
			return p
		}
		if strings.HasPrefix(p.UUID(), arg) {
			if match != nil {
				return nil // ambiguous prefix
			}
			match = p
		}
	}
	return match
}

func printPatients(patients []*types.Patient) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMRN\tNAME\tAGE\tLAST VISIT")
	for _, p := range patients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			shortID(p.UUID()), p.PatientID, p.Name, p.Age, p.LastVisit)
	}
	w.Flush()
}
