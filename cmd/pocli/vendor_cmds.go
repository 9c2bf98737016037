package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
)

// ------------------ Vendor Order Commands -------------------

func newVendorOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vendor-orders",
		Aliases: []string{"vo"},
		Short:   "Vendor order operations",
	}
	cmd.AddCommand(projectQueryCmd(a, "list", "List the vendor orders of a project",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetProjectVendorOrders(ctx, id) }))
	cmd.AddCommand(vendorOrderCmd(a, "get", "Show a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVendorOrderDetails(ctx, id) }))
	cmd.AddCommand(vendorOrderCmd(a, "delete", "Delete a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.DeleteVendorOrder(ctx, id) }))
	cmd.AddCommand(vendorOrderCmd(a, "payments", "Payment summary of a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) {
			return c.GetVendorOrderPaymentSummary(ctx, id)
		}))
	cmd.AddCommand(vendorOrderCmd(a, "profit", "Profit analysis of a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) {
			return c.GetVendorOrderProfitAnalysis(ctx, id)
		}))
	cmd.AddCommand(vendorOrderCmd(a, "line-items", "List the line items of a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVendorOrderLineItems(ctx, id) }))
	cmd.AddCommand(newVendorOrderCreateCmd(a))
	cmd.AddCommand(newVendorOrderBulkCreateCmd(a))
	cmd.AddCommand(newVendorOrderUpdateCmd(a))
	cmd.AddCommand(newVendorOrderStatusCmd(a))
	cmd.AddCommand(newVendorOrderAddLineCmd(a))
	cmd.AddCommand(newVendorOrderUpdateLineCmd(a))
	cmd.AddCommand(newVendorOrderDeleteLineCmd(a))
	addVendorOrderPaymentCmds(a, cmd)
	return cmd
}

// vendorOrderCmd builds a "<use> <vendor-order-id>" command.
func vendorOrderCmd(a *app, use, short string, fn func(context.Context, *client.Client, int64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <vendor-order-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return fn(ctx, c, id)
			})
		},
	}
}

func newVendorOrderCreateCmd(a *app) *cobra.Command {
	var (
		projectID       int64
		req             client.VendorOrderRequest
		poDate, dueDate string
		value           float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vendor order for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PODate = client.Date(poDate)
			req.DueDate = client.Date(dueDate)
			req.POValue = optFloat(cmd, "po-value", value)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateVendorOrder(ctx, projectID, req)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	f.Int64Var(&req.VendorID, "vendor-id", 0, "Vendor ID (required)")
	f.StringVar(&req.PONumber, "po-number", "", "PO number (required)")
	f.StringVar(&poDate, "po-date", "", "PO date YYYY-MM-DD (required)")
	f.Float64Var(&value, "po-value", 0, "PO value")
	f.StringVar(&dueDate, "due-date", "", "Due date YYYY-MM-DD")
	f.StringVar(&req.Description, "description", "", "Description")
	for _, name := range []string{"project-id", "vendor-id", "po-number", "po-date"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newVendorOrderBulkCreateCmd(a *app) *cobra.Command {
	var (
		projectID int64
		file      string
	)
	cmd := &cobra.Command{
		Use:   "bulk-create",
		Short: "Create vendor orders from a JSON array file ('-' reads stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			var orders []client.VendorOrderRequest
			if err := json.Unmarshal(data, &orders); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}
			if len(orders) == 0 {
				return fmt.Errorf("%s contains no vendor orders", file)
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.BulkCreateVendorOrders(ctx, projectID, client.BulkCreateVendorOrdersRequest{Orders: orders})
			})
		},
	}
	cmd.Flags().Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with vendor orders (required)")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newVendorOrderUpdateCmd(a *app) *cobra.Command {
	var (
		req     client.VendorOrderUpdateRequest
		dueDate string
		value   float64
	)
	cmd := &cobra.Command{
		Use:   "update <vendor-order-id>",
		Short: "Update a vendor order; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			req.DueDate = client.Date(dueDate)
			req.POValue = optFloat(cmd, "po-value", value)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateVendorOrder(ctx, id, req)
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&value, "po-value", 0, "PO value")
	f.StringVar(&dueDate, "due-date", "", "Due date YYYY-MM-DD")
	f.StringVar(&req.Description, "description", "", "Description")
	f.StringVar(&req.WorkStatus, "work-status", "", "Work status")
	f.StringVar(&req.PaymentStatus, "payment-status", "", "Payment status")
	return cmd
}

func newVendorOrderStatusCmd(a *app) *cobra.Command {
	var req client.VendorOrderStatusRequest
	cmd := &cobra.Command{
		Use:   "status <vendor-order-id>",
		Short: "Change the work and/or payment status of a vendor order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			if req.WorkStatus == "" && req.PaymentStatus == "" {
				return fmt.Errorf("provide --work-status and/or --payment-status")
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateVendorOrderStatus(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.WorkStatus, "work-status", "", "Work status")
	cmd.Flags().StringVar(&req.PaymentStatus, "payment-status", "", "Payment status")
	return cmd
}

func newVendorOrderAddLineCmd(a *app) *cobra.Command {
	var req client.VendorOrderLineItemRequest
	cmd := &cobra.Command{
		Use:   "add-line <vendor-order-id>",
		Short: "Add a line item to a vendor order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.AddVendorOrderLineItem(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.ItemName, "item", "", "Item name (required)")
	cmd.Flags().Float64Var(&req.Quantity, "qty", 0, "Quantity (required)")
	cmd.Flags().Float64Var(&req.UnitPrice, "price", 0, "Unit price (required)")
	for _, name := range []string{"item", "qty", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newVendorOrderUpdateLineCmd(a *app) *cobra.Command {
	var (
		req        client.VendorOrderLineItemUpdateRequest
		qty, price float64
	)
	cmd := &cobra.Command{
		Use:   "update-line <vendor-order-id> <line-item-id>",
		Short: "Update a vendor order line item; only flags given are sent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			lineID, err := parseID("line item id", args[1])
			if err != nil {
				return err
			}
			req.Quantity = optFloat(cmd, "qty", qty)
			req.UnitPrice = optFloat(cmd, "price", price)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateVendorOrderLineItem(ctx, orderID, lineID, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.ItemName, "item", "", "Item name")
	cmd.Flags().Float64Var(&qty, "qty", 0, "Quantity")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	return cmd
}

func newVendorOrderDeleteLineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-line <vendor-order-id> <line-item-id>",
		Short: "Delete a vendor order line item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			lineID, err := parseID("line item id", args[1])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.DeleteVendorOrderLineItem(ctx, orderID, lineID)
			})
		},
	}
}
