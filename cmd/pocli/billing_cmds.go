package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
)

// ------------------ Billing Commands -------------------

func newBillingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Billing PO operations",
	}
	cmd.AddCommand(newBillingCreateCmd(a))
	cmd.AddCommand(billingPOCmd(a, "get", "Show a billing PO with its line items",
		func(ctx context.Context, c *client.Client, id string) (any, error) { return c.GetBillingPO(ctx, id) }))
	cmd.AddCommand(newBillingUpdateCmd(a))
	cmd.AddCommand(newBillingApproveCmd(a))
	cmd.AddCommand(projectQueryCmd(a, "summary", "Billing summary of a project",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetProjectBillingSummary(ctx, id) }))
	cmd.AddCommand(projectQueryCmd(a, "pl", "Billing profit and loss of a project",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetProjectProfitLoss(ctx, id) }))
	cmd.AddCommand(billingPOCmd(a, "line-items", "List the line items of a billing PO",
		func(ctx context.Context, c *client.Client, id string) (any, error) { return c.GetBillingLineItems(ctx, id) }))
	cmd.AddCommand(newBillingAddLineCmd(a))
	cmd.AddCommand(newBillingDeleteLineCmd(a))
	return cmd
}

// billingPOCmd builds a "<use> <billing-po-id>" read command.
func billingPOCmd(a *app, use, short string, fn func(context.Context, *client.Client, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <billing-po-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return fn(ctx, c, args[0])
			})
		},
	}
}

func newBillingCreateCmd(a *app) *cobra.Command {
	var (
		projectID int64
		req       client.CreateBillingPORequest
		gst       float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the billing PO of a client PO",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.BilledGST = optFloat(cmd, "gst", gst)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateBillingPO(ctx, projectID, req)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	f.Int64Var(&req.ClientPOID, "client-po-id", 0, "Client PO ID (required)")
	f.Float64Var(&req.BilledValue, "billed-value", 0, "Billed value (required)")
	f.Float64Var(&gst, "gst", 0, "Billed GST")
	f.StringVar(&req.BillingNotes, "notes", "", "Billing notes")
	for _, name := range []string{"project-id", "client-po-id", "billed-value"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newBillingUpdateCmd(a *app) *cobra.Command {
	var (
		req        client.UpdateBillingPORequest
		value, gst float64
	)
	cmd := &cobra.Command{
		Use:   "update <billing-po-id>",
		Short: "Update a billing PO; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.BilledValue = optFloat(cmd, "billed-value", value)
			req.BilledGST = optFloat(cmd, "gst", gst)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateBillingPO(ctx, args[0], req)
			})
		},
	}
	cmd.Flags().Float64Var(&value, "billed-value", 0, "Billed value")
	cmd.Flags().Float64Var(&gst, "gst", 0, "Billed GST")
	cmd.Flags().StringVar(&req.BillingNotes, "notes", "", "Billing notes")
	return cmd
}

func newBillingApproveCmd(a *app) *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:   "approve <billing-po-id>",
		Short: "Approve a billing PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ApproveBillingPO(ctx, args[0], notes)
			})
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Approval notes")
	return cmd
}

func newBillingAddLineCmd(a *app) *cobra.Command {
	var req client.BillingLineItemRequest
	cmd := &cobra.Command{
		Use:   "add-line <billing-po-id>",
		Short: "Add a line to a billing PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.AddBillingLineItem(ctx, args[0], req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Description, "description", "", "Description (required)")
	cmd.Flags().Float64Var(&req.Qty, "qty", 0, "Quantity (required)")
	cmd.Flags().Float64Var(&req.Rate, "rate", 0, "Rate (required)")
	for _, name := range []string{"description", "qty", "rate"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newBillingDeleteLineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-line <billing-po-id> <line-item-id>",
		Short: "Delete a line of a billing PO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.DeleteBillingLineItem(ctx, args[0], args[1])
			})
		},
	}
}
