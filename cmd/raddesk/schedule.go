package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk/schedule"
	"github.com/raddesk/raddesk/types"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Today's schedule and countdowns",
}

var scheduleUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show upcoming appointments ordered by countdown",
	RunE:  runScheduleUpcoming,
}

func init() {
	scheduleCmd.AddCommand(scheduleUpcomingCmd)
}

func runScheduleUpcoming(cmd *cobra.Command, args []string) error {
	now := time.Now()

	type upcoming struct {
		appt    *types.Appointment
		minutes int
	}
	var rows []upcoming
	for _, a := range app.Appointments.Items() {
		if a.Status == types.AppointmentCancelled || a.Status == types.AppointmentCompleted {
			continue
		}
		m, err := schedule.MinutesUntil(a.Date, a.Time, now)
		if err != nil || m < 0 {
			continue
		}
		rows = append(rows, upcoming{a, m})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].minutes < rows[j].minutes })

	if len(rows) == 0 {
		fmt.Println("No upcoming appointments.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COUNTDOWN\tWHEN\tPATIENT\tEXAM\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			schedule.RelativeLabel(r.minutes), r.appt.Date, r.appt.Time,
			r.appt.PatientName, r.appt.TestName, r.appt.Status)
	}
	w.Flush()
	return nil
}
