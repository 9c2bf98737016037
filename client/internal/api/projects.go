package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// CreateProject creates a project.
func CreateProject(ctx context.Context, c *Caller, req types.CreateProjectRequest) (*types.CreateProjectResponse, error) {
	return call[types.CreateProjectResponse](ctx, c, request{
		op:     "create_project",
		method: http.MethodPost,
		path:   "/api/projects",
		body:   req,
	})
}

// DeleteProject deletes a project by name.
func DeleteProject(ctx context.Context, c *Caller, name string) (*types.DeleteProjectResponse, error) {
	return call[types.DeleteProjectResponse](ctx, c, request{
		op:     "delete_project",
		method: http.MethodDelete,
		path:   "/api/projects",
		query:  url.Values{"name": {name}},
	})
}

// GetFinancialSummary returns the PO and verbal agreement totals of a project.
func GetFinancialSummary(ctx context.Context, c *Caller, projectID int64) (*types.FinancialSummaryResponse, error) {
	return call[types.FinancialSummaryResponse](ctx, c, request{
		op:     "get_financial_summary",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/financial-summary",
	})
}

// GetEnrichedPOs returns the project's POs joined with payment data.
func GetEnrichedPOs(ctx context.Context, c *Caller, projectID int64) (*types.EnrichedPOsResponse, error) {
	return call[types.EnrichedPOsResponse](ctx, c, request{
		op:     "get_enriched_pos",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/po/enriched",
	})
}

// ListProjects pages through projects. Zero skip and limit leave the backend
// defaults.
func ListProjects(ctx context.Context, c *Caller, skip, limit int) (*types.ProjectsResponse, error) {
	q := url.Values{}
	setIfNonZero(q, "skip", int64(skip))
	setIfNonZero(q, "limit", int64(limit))
	return call[types.ProjectsResponse](ctx, c, request{
		op:     "list_projects",
		method: http.MethodGet,
		path:   "/api/projects",
		query:  q,
	})
}

func GetProject(ctx context.Context, c *Caller, projectID int64) (*types.ProjectResponse, error) {
	return call[types.ProjectResponse](ctx, c, request{
		op:     "get_project",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID),
	})
}

// UpdateProject applies a partial update to a project.
func UpdateProject(ctx context.Context, c *Caller, projectID int64, req types.UpdateProjectRequest) (*types.ProjectResponse, error) {
	return call[types.ProjectResponse](ctx, c, request{
		op:     "update_project",
		method: http.MethodPut,
		path:   "/api/projects/" + id(projectID),
		body:   req,
	})
}

// DeleteProjectByID deletes a project by id. DeleteProject deletes by name
// and also removes the project's POs.
func DeleteProjectByID(ctx context.Context, c *Caller, projectID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_project_by_id",
		method: http.MethodDelete,
		path:   "/api/projects/" + id(projectID),
	})
}

// SearchProjects matches projects by name.
func SearchProjects(ctx context.Context, c *Caller, term string) (*types.ProjectsResponse, error) {
	return call[types.ProjectsResponse](ctx, c, request{
		op:     "search_projects",
		method: http.MethodGet,
		path:   "/api/projects/search",
		query:  url.Values{"q": {term}},
	})
}
