package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
)

// ------------------ Project Commands -------------------

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project operations and summaries",
	}
	cmd.AddCommand(newProjectCreateCmd(a))
	cmd.AddCommand(newProjectDeleteCmd(a))
	cmd.AddCommand(newProjectListCmd(a))
	cmd.AddCommand(newProjectSearchCmd(a))
	cmd.AddCommand(newProjectUpdateCmd(a))
	cmd.AddCommand(projectQueryCmd(a, "get", "Show a project",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetProject(ctx, id) }))
	cmd.AddCommand(projectQueryCmd(a, "remove", "Delete a project by id",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.DeleteProjectByID(ctx, id) }))
	cmd.AddCommand(projectQueryCmd(a, "summary", "PO and verbal agreement totals",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetFinancialSummary(ctx, id) }))
	cmd.AddCommand(projectQueryCmd(a, "enriched-pos", "POs with payments and receivables",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetEnrichedPOs(ctx, id) }))
	cmd.AddCommand(projectQueryCmd(a, "pl", "Flattened profit and loss totals",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetProjectPLAnalysis(ctx, id) }))
	return cmd
}

// projectQueryCmd builds a "<use> <project-id>" read command.
func projectQueryCmd(a *app, use, short string, fn func(context.Context, *client.Client, int64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <project-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return fn(ctx, c, id)
			})
		},
	}
}

func newProjectCreateCmd(a *app) *cobra.Command {
	var (
		req      client.CreateProjectRequest
		lat, lng float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Latitude = optFloat(cmd, "latitude", lat)
			req.Longitude = optFloat(cmd, "longitude", lng)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateProject(ctx, req)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "Project name (required)")
	f.StringVar(&req.Location, "location", "", "Location")
	f.StringVar(&req.City, "city", "", "City")
	f.StringVar(&req.State, "state", "", "State")
	f.StringVar(&req.Country, "country", "", "Country")
	f.Float64Var(&lat, "latitude", 0, "Latitude")
	f.Float64Var(&lng, "longitude", 0, "Longitude")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectDeleteCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.DeleteProject(ctx, name)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectListCmd(a *app) *cobra.Command {
	var skip, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListProjects(ctx, skip, limit)
			})
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "Rows to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (backend default when 0)")
	return cmd
}

func newProjectSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search projects by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.SearchProjects(ctx, args[0])
			})
		},
	}
}

func newProjectUpdateCmd(a *app) *cobra.Command {
	var (
		req      client.UpdateProjectRequest
		lat, lng float64
	)
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project id", args[0])
			if err != nil {
				return err
			}
			req.Latitude = optFloat(cmd, "latitude", lat)
			req.Longitude = optFloat(cmd, "longitude", lng)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateProject(ctx, id, req)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "Project name")
	f.StringVar(&req.Location, "location", "", "Location")
	f.StringVar(&req.City, "city", "", "City")
	f.StringVar(&req.State, "state", "", "State")
	f.StringVar(&req.Country, "country", "", "Country")
	f.Float64Var(&lat, "latitude", 0, "Latitude")
	f.Float64Var(&lng, "longitude", 0, "Longitude")
	return cmd
}

// ------------------ Verbal Agreement Commands -------------------

func newVerbalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verbal",
		Short: "Verbal agreement operations",
	}
	cmd.AddCommand(projectQueryCmd(a, "list", "List the verbal agreements of a project",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVerbalAgreements(ctx, id) }))
	cmd.AddCommand(newVerbalCreateCmd(a))
	cmd.AddCommand(newVerbalAddPOCmd(a))
	return cmd
}

func newVerbalCreateCmd(a *app) *cobra.Command {
	var (
		projectID, clientID int64
		req                 client.VerbalAgreementRequest
		piDate              string
		value               float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a verbal agreement for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PIDate = client.Date(piDate)
			req.Value = optFloat(cmd, "value", value)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateVerbalAgreement(ctx, projectID, clientID, req)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	f.Int64Var(&clientID, "client-id", 0, "Client ID (required)")
	f.StringVar(&req.PINumber, "pi-number", "", "Proforma invoice number (required)")
	f.StringVar(&piDate, "pi-date", "", "Proforma invoice date YYYY-MM-DD (required)")
	f.Float64Var(&value, "value", 0, "Agreed value")
	f.StringVar(&req.Notes, "notes", "", "Notes")
	for _, name := range []string{"project-id", "client-id", "pi-number", "pi-date"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newVerbalAddPOCmd(a *app) *cobra.Command {
	var (
		agreementID int64
		req         client.AddPOToVerbalAgreementRequest
		poDate      string
	)
	cmd := &cobra.Command{
		Use:   "add-po",
		Short: "Link a PO to a verbal agreement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PODate = client.Date(poDate)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.AddPOToVerbalAgreement(ctx, agreementID, req)
			})
		},
	}
	cmd.Flags().Int64Var(&agreementID, "agreement-id", 0, "Verbal agreement ID (required)")
	cmd.Flags().StringVar(&req.PONumber, "po-number", "", "PO number (required)")
	cmd.Flags().StringVar(&poDate, "po-date", "", "PO date YYYY-MM-DD (required)")
	for _, name := range []string{"agreement-id", "po-number", "po-date"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
