package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk/types"
)

var flagRestockBy string

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Equipment and consumable inventory",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List equipment and consumable stock levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tNEXT MAINTENANCE")
		for _, e := range app.Inventory.Equipment.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				shortID(e.UUID()), e.Name, e.Type, e.Status, e.NextMaintenanceDate)
		}
		w.Flush()

		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tQTY\tMIN\tEXPIRES")
		for _, c := range app.Inventory.Consumables.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
				shortID(c.UUID()), c.Name, c.Type, c.Quantity, c.MinimumQuantity, c.ExpirationDate)
		}
		w.Flush()
		return nil
	},
}

var inventoryCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run stock, expiry and maintenance checks and raise alerts",
	RunE:  runInventoryCheck,
}

var inventoryAlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List active alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		printAlerts(app.Inventory.ActiveAlerts())
		return nil
	},
}

var inventoryRestockCmd = &cobra.Command{
	Use:   "restock <consumable-id>",
	Short: "Create a restock request for a consumable",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryRestock,
}

func init() {
	inventoryRestockCmd.Flags().StringVar(&flagRestockBy, "by", "", "who is requesting the restock (required)")
	_ = inventoryRestockCmd.MarkFlagRequired("by")

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryCheckCmd)
	inventoryCmd.AddCommand(inventoryAlertsCmd)
	inventoryCmd.AddCommand(inventoryRestockCmd)
}

func runInventoryCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	lowStock, err := app.Inventory.CheckLowStock(ctx)
	if err != nil {
		return err
	}
	expiring, err := app.Inventory.CheckExpiringItems(ctx)
	if err != nil {
		return err
	}
	maintenance, err := app.Inventory.CheckMaintenanceDue(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Raised %d low stock, %d expiring and %d maintenance alerts.\n\n",
		lowStock, expiring, maintenance)
	printAlerts(app.Inventory.ActiveAlerts())
	return nil
}

func runInventoryRestock(cmd *cobra.Command, args []string) error {
	var target *types.Consumable
	for _, c := range app.Inventory.Consumables.Items() {
		if matchesID(c.UUID(), args[0]) {
			target = c
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no consumable matches %q", args[0])
	}
	req, err := app.Inventory.NewRestockRequest(cmd.Context(), target.UUID(), flagRestockBy)
	if err != nil {
		return err
	}
	fmt.Printf("Requested %d x %s (%s)\n", req.RequestedQuantity, target.Name, shortID(req.UUID()))
	return nil
}

func printAlerts(alerts []*types.Alert) {
	if len(alerts) == 0 {
		fmt.Println("No active alerts.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRIORITY\tTYPE\tMESSAGE")
	for _, a := range alerts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(a.UUID()), a.Priority, a.Type, a.Message)
	}
	w.Flush()
}
