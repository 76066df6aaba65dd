package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk/checklist"
	"github.com/raddesk/raddesk/types"
)

var (
	flagChecklistPatient string
	flagChecklistStudy   string
	flagChecklistBy      string
	flagItemStatus       string
	flagItemValue        string
	flagItemNotes        string
)

var checklistsCmd = &cobra.Command{
	Use:   "checklists",
	Short: "Pre-procedure patient safety checklists",
}

var checklistsStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a safety checklist for a patient and study",
	RunE:  runChecklistsStart,
}

var checklistsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a checklist and its outstanding problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistsShow,
}

var checklistsItemCmd = &cobra.Command{
	Use:   "item <checklist-id> <item-id>",
	Short: "Record a verification result on one checklist item",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecklistsItem,
}

var checklistsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Sign off a checklist once every required item passes",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistsComplete,
}

func init() {
	checklistsStartCmd.Flags().StringVar(&flagChecklistPatient, "patient", "", "patient id or MRN (required)")
	checklistsStartCmd.Flags().StringVar(&flagChecklistStudy, "study", "", "study id (required)")
	checklistsStartCmd.Flags().StringVar(&flagChecklistBy, "by", "", "who is starting the checklist (required)")
	_ = checklistsStartCmd.MarkFlagRequired("patient")
	_ = checklistsStartCmd.MarkFlagRequired("study")
	_ = checklistsStartCmd.MarkFlagRequired("by")

	checklistsItemCmd.Flags().StringVar(&flagItemStatus, "status", "", "pending, completed, flagged or not_applicable (required)")
	checklistsItemCmd.Flags().StringVar(&flagItemValue, "value", "", "measured value, for items with a threshold")
	checklistsItemCmd.Flags().StringVar(&flagItemNotes, "notes", "", "free-form notes")
	checklistsItemCmd.Flags().StringVar(&flagChecklistBy, "by", "", "who verified the item")
	_ = checklistsItemCmd.MarkFlagRequired("status")

	checklistsCompleteCmd.Flags().StringVar(&flagChecklistBy, "by", "", "who is signing off (required)")
	_ = checklistsCompleteCmd.MarkFlagRequired("by")

	checklistsCmd.AddCommand(checklistsStartCmd)
	checklistsCmd.AddCommand(checklistsShowCmd)
	checklistsCmd.AddCommand(checklistsItemCmd)
	checklistsCmd.AddCommand(checklistsCompleteCmd)
}

func runChecklistsStart(cmd *cobra.Command, args []string) error {
	patient := findPatient(flagChecklistPatient)
	if patient == nil {
		return fmt.Errorf("no patient matches %q", flagChecklistPatient)
	}
	var study *types.Study
	for _, s := range app.Studies.Items() {
		if matchesID(s.UUID(), flagChecklistStudy) {
			study = s
			break
		}
	}
	if study == nil {
		return fmt.Errorf("no study matches %q", flagChecklistStudy)
	}
	if existing := app.Checklists.ForStudy(patient.UUID(), study.UUID()); existing != nil {
		return fmt.Errorf("checklist %s already exists for this study", shortID(existing.UUID()))
	}

	c, err := app.Checklists.Start(cmd.Context(), patient.UUID(), study.UUID(), flagChecklistBy)
	if err != nil {
		return err
	}
	fmt.Printf("Started checklist %s for %s (%d items)\n", shortID(c.UUID()), patient.Name, len(c.Items))
	return nil
}

func runChecklistsShow(cmd *cobra.Command, args []string) error {
	c := findChecklist(args[0])
	if c == nil {
		return fmt.Errorf("no checklist matches %q", args[0])
	}

	fmt.Printf("Checklist %s  [%s]  started %s by %s\n", shortID(c.UUID()), c.Status, c.StartedAt, c.StartedBy)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tTITLE\tSTATUS\tVALUE\tVERIFIED BY")
	for _, item := range c.Items {
		value := item.Value
		if value != "" && item.Unit != "" {
			value += " " + item.Unit
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Title, item.Status, value, item.VerifiedBy)
	}
	w.Flush()

	if problems := checklist.Validate(c); len(problems) > 0 {
		fmt.Println("\nOutstanding:")
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
	}
	return nil
}

func runChecklistsItem(cmd *cobra.Command, args []string) error {
	c := findChecklist(args[0])
	if c == nil {
		return fmt.Errorf("no checklist matches %q", args[0])
	}
	if c.Item(args[1]) == nil {
		return fmt.Errorf("checklist %s has no item %q", shortID(c.UUID()), args[1])
	}

	status := types.ChecklistItemStatus(flagItemStatus)
	switch status {
	case types.ItemPending, types.ItemCompleted, types.ItemFlagged, types.ItemNotApplicable:
	default:
		return fmt.Errorf("unknown item status %q", flagItemStatus)
	}
	update := types.ChecklistItemUpdate{Status: &status}
	if flagItemValue != "" {
		update.Value = &flagItemValue
	}
	if flagItemNotes != "" {
		update.Notes = &flagItemNotes
	}
	if flagChecklistBy != "" {
		update.VerifiedBy = &flagChecklistBy
	}
	if err := app.Checklists.UpdateItem(cmd.Context(), c.UUID(), args[1], update); err != nil {
		return err
	}
	fmt.Printf("Item %s marked %s\n", args[1], status)
	return nil
}

func runChecklistsComplete(cmd *cobra.Command, args []string) error {
	c := findChecklist(args[0])
	if c == nil {
		return fmt.Errorf("no checklist matches %q", args[0])
	}
	if err := app.Checklists.Complete(cmd.Context(), c.UUID(), flagChecklistBy); err != nil {
		return err
	}
	fmt.Printf("Checklist %s completed by %s\n", shortID(c.UUID()), flagChecklistBy)
	return nil
}

func findChecklist(arg string) *types.Checklist {
	for _, c := range app.Checklists.Checklists.Items() {
		if matchesID(c.UUID(), arg) {
			return c
		}
	}
	return nil
}
