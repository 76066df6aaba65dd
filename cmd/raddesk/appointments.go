package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk/schedule"
	"github.com/raddesk/raddesk/types"
)

var (
	flagApptPatient string
	flagApptTest    string
	flagApptDate    string
	flagApptTime    string
	flagApptNotes   string
)

var appointmentsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"appts"},
	Short:   "Manage the appointment book",
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments with countdowns",
	RunE: func(cmd *cobra.Command, args []string) error {
		printAppointments(app.Appointments.Items())
		return nil
	},
}

var appointmentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Book an appointment",
	RunE:  runAppointmentsAdd,
}

var appointmentsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppointmentsCancel,
}

func init() {
	appointmentsAddCmd.Flags().StringVar(&flagApptPatient, "patient", "", "patient id or MRN (required)")
	appointmentsAddCmd.Flags().StringVar(&flagApptTest, "test", "", "catalog exam id (required)")
	appointmentsAddCmd.Flags().StringVar(&flagApptDate, "date", "", "date, YYYY-MM-DD (required)")
	appointmentsAddCmd.Flags().StringVar(&flagApptTime, "time", "", `time, e.g. "9:30 AM" (required)`)
	appointmentsAddCmd.Flags().StringVar(&flagApptNotes, "notes", "", "free-form notes")
	_ = appointmentsAddCmd.MarkFlagRequired("patient")
	_ = appointmentsAddCmd.MarkFlagRequired("test")
	_ = appointmentsAddCmd.MarkFlagRequired("date")
	_ = appointmentsAddCmd.MarkFlagRequired("time")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsAddCmd)
	appointmentsCmd.AddCommand(appointmentsCancelCmd)
}

func runAppointmentsAdd(cmd *cobra.Command, args []string) error {
	patient := findPatient(flagApptPatient)
	if patient == nil {
		return fmt.Errorf("no patient matches %q", flagApptPatient)
	}
	var exam *types.RadiologyTest
	for _, t := range app.Tests.Items() {
		if matchesID(t.UUID(), flagApptTest) {
			exam = t
			break
		}
	}
	if exam == nil {
		return fmt.Errorf("no catalog exam matches %q", flagApptTest)
	}

	appt := &types.Appointment{
		PatientID:   patient.UUID(),
		PatientName: patient.Name,
		TestID:      exam.UUID(),
		TestName:    exam.Name,
		Date:        flagApptDate,
		Time:        flagApptTime,
		Status:      types.AppointmentScheduled,
		Notes:       flagApptNotes,
	}
	if err := app.Appointments.Add(cmd.Context(), appt); err != nil {
		return err
	}
	fmt.Printf("Booked %s for %s on %s at %s (%s)\n",
		exam.Name, patient.Name, appt.Date, appt.Time, shortID(appt.UUID()))
	return nil
}

func runAppointmentsCancel(cmd *cobra.Command, args []string) error {
	var target *types.Appointment
	for _, a := range app.Appointments.Items() {
		if matchesID(a.UUID(), args[0]) {
			target = a
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no appointment matches %q", args[0])
	}
	status := types.AppointmentCancelled
	if err := app.Appointments.Update(cmd.Context(), target.UUID(), types.AppointmentUpdate{Status: &status}); err != nil {
		return err
	}
	fmt.Printf("Cancelled appointment %s\n", shortID(target.UUID()))
	return nil
}

func printAppointments(appts []*types.Appointment) {
	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tCOUNTDOWN\tPATIENT\tEXAM\tSTATUS")
	for _, a := range appts {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
			shortID(a.UUID()), a.Date, a.Time,
			schedule.FormatRelativeAppointment(a.Date, a.Time, now),
			a.PatientName, a.TestName, a.Status)
	}
	w.Flush()
}
