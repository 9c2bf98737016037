package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
)

// ------------------ Payment Commands -------------------

func newPaymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Client payments received against POs",
	}
	cmd.AddCommand(idCmd(a, "list", "client-po-id", "List the payments of a PO with totals",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetPOPayments(ctx, id) }))
	cmd.AddCommand(idCmd(a, "delete", "payment-id", "Delete a payment",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.DeletePayment(ctx, id) }))
	cmd.AddCommand(newPaymentAllCmd(a))
	cmd.AddCommand(newPaymentAddCmd(a))
	cmd.AddCommand(newPaymentUpdateCmd(a))
	return cmd
}

func newPaymentAllCmd(a *app) *cobra.Command {
	var skip, limit int
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Page through every recorded payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetAllPayments(ctx, skip, limit)
			})
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "Rows to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (backend default when 0)")
	return cmd
}

func newPaymentAddCmd(a *app) *cobra.Command {
	var (
		req       client.PaymentRequest
		date      string
		status    string
		tdsAmount float64
	)
	cmd := &cobra.Command{
		Use:   "add <client-po-id>",
		Short: "Record a payment against a PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client po id", args[0])
			if err != nil {
				return err
			}
			req.PaymentDate = client.Date(date)
			req.Status = client.PaymentState(status)
			req.TDSAmount = optFloat(cmd, "tds-amount", tdsAmount)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreatePOPayment(ctx, id, req)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Payment date YYYY-MM-DD (required)")
	f.Float64Var(&req.Amount, "amount", 0, "Amount (required)")
	f.StringVar(&req.PaymentMode, "mode", "", "Payment mode such as neft or cheque (required)")
	f.StringVar(&status, "status", "", "pending, cleared or bounced")
	f.StringVar(&req.PaymentStage, "stage", "", "Payment stage")
	f.StringVar(&req.ReferenceNumber, "reference", "", "Reference number")
	f.StringVar(&req.Notes, "notes", "", "Notes")
	f.BoolVar(&req.IsTDSDeducted, "tds", false, "TDS was deducted")
	f.Float64Var(&tdsAmount, "tds-amount", 0, "TDS amount")
	f.StringVar(&req.ReceivedByAccount, "account", "", "Receiving account")
	f.StringVar(&req.TransactionType, "type", "", "credit or debit")
	for _, name := range []string{"date", "amount", "mode"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newPaymentUpdateCmd(a *app) *cobra.Command {
	var (
		req          client.PaymentUpdateRequest
		date, status string
		amount, tds  float64
	)
	cmd := &cobra.Command{
		Use:   "update <payment-id>",
		Short: "Update a payment; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("payment id", args[0])
			if err != nil {
				return err
			}
			req.PaymentDate = client.Date(date)
			req.Status = client.PaymentState(status)
			req.Amount = optFloat(cmd, "amount", amount)
			req.TDSAmount = optFloat(cmd, "tds-amount", tds)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdatePayment(ctx, id, req)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Payment date YYYY-MM-DD")
	f.Float64Var(&amount, "amount", 0, "Amount")
	f.StringVar(&req.PaymentMode, "mode", "", "Payment mode")
	f.StringVar(&status, "status", "", "pending, cleared or bounced")
	f.StringVar(&req.PaymentStage, "stage", "", "Payment stage")
	f.StringVar(&req.ReferenceNumber, "reference", "", "Reference number")
	f.StringVar(&req.Notes, "notes", "", "Notes")
	f.Float64Var(&tds, "tds-amount", 0, "TDS amount")
	return cmd
}

// ------------------ Vendor Order Payment Commands -------------------

func addVendorOrderPaymentCmds(a *app, cmd *cobra.Command) {
	cmd.AddCommand(vendorOrderCmd(a, "pay-list", "List outgoing payments of a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVendorOrderPayments(ctx, id) }))
	cmd.AddCommand(vendorOrderCmd(a, "linked", "Client and vendor payments linked to a vendor order",
		func(ctx context.Context, c *client.Client, id int64) (any, error) {
			return c.GetVendorOrderLinkedPayments(ctx, id)
		}))
	cmd.AddCommand(idCmd(a, "delete-payment", "vendor-payment-id", "Delete a vendor payment",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.DeleteVendorPayment(ctx, id) }))
	cmd.AddCommand(newVendorOrderPayCmd(a))
	cmd.AddCommand(newVendorOrderLinkCmd(a))
	cmd.AddCommand(newVendorOrderUnlinkCmd(a))
}

func newVendorOrderPayCmd(a *app) *cobra.Command {
	var (
		req  client.VendorPaymentRequest
		date string
	)
	cmd := &cobra.Command{
		Use:   "pay <vendor-order-id>",
		Short: "Record a payment made to the vendor of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			req.PaymentDate = client.Date(date)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateVendorOrderPayment(ctx, id, req)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Payment date YYYY-MM-DD (required)")
	f.Float64Var(&req.Amount, "amount", 0, "Amount (required)")
	f.StringVar(&req.PaymentMode, "mode", "", "Payment mode (required)")
	f.StringVar(&req.ReferenceNumber, "reference", "", "Reference number")
	f.StringVar(&req.Notes, "notes", "", "Notes")
	for _, name := range []string{"date", "amount", "mode"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newVendorOrderLinkCmd(a *app) *cobra.Command {
	var (
		req      client.PaymentLinkRequest
		linkType string
	)
	cmd := &cobra.Command{
		Use:   "link <vendor-order-id>",
		Short: "Link a client payment to a vendor order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			req.LinkType = client.LinkType(linkType)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.LinkPaymentToVendorOrder(ctx, id, req)
			})
		},
	}
	cmd.Flags().Int64Var(&req.PaymentID, "payment-id", 0, "Client payment ID (required)")
	cmd.Flags().StringVar(&linkType, "type", string(client.LinkIncoming), "incoming or outgoing")
	_ = cmd.MarkFlagRequired("payment-id")
	return cmd
}

func newVendorOrderUnlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <vendor-order-id> <payment-id>",
		Short: "Remove a payment link from a vendor order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID("vendor order id", args[0])
			if err != nil {
				return err
			}
			paymentID, err := parseID("payment id", args[1])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UnlinkVendorOrderPayment(ctx, orderID, paymentID)
			})
		},
	}
}
