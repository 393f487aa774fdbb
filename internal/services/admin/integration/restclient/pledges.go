package restclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/louisbranch/conectareparo/internal/repair"
)

const pledgesPath = "/api/v1/pledges"

// PledgeFilter narrows a pledge listing. Empty fields are not sent.
type PledgeFilter struct {
	MaintenanceID string
	Status        repair.PledgeStatus
	Type          repair.PledgeType
	Search        string
	PageRequest
}

func (f PledgeFilter) query() url.Values {
	query := url.Values{}
	setIfPresent(query, "maintenanceId", f.MaintenanceID)
	setIfPresent(query, "status", string(f.Status))
	setIfPresent(query, "type", string(f.Type))
	setIfPresent(query, "search", f.Search)
	f.PageRequest.encode(query)
	return query
}

// ListPledges returns one page of pledges.
func (c *Client) ListPledges(ctx context.Context, filter PledgeFilter) (Page[repair.Pledge], error) {
	var page Page[repair.Pledge]
	err := c.do(ctx, call{
		op:     "list_pledges",
		method: http.MethodGet,
		path:   pledgesPath,
		query:  filter.query(),
	}, &page)
	return page, err
}

// ListAllPledges drains every page matching filter.
func (c *Client) ListAllPledges(ctx context.Context, filter PledgeFilter) ([]repair.Pledge, error) {
	filter.Size = listAllPageSize
	return drainPages(ctx, "list_all_pledges", listAllMaxPages, func(ctx context.Context, number int) (Page[repair.Pledge], error) {
		filter.Page = number
		return c.ListPledges(ctx, filter)
	})
}

// GetPledge returns a single pledge.
func (c *Client) GetPledge(ctx context.Context, id string) (repair.Pledge, error) {
	var pledge repair.Pledge
	err := c.do(ctx, call{
		op:     "get_pledge",
		method: http.MethodGet,
		path:   pledgesPath + "/" + pathID(id),
	}, &pledge)
	return pledge, err
}

// CreatePledge records a volunteer offer.
func (c *Client) CreatePledge(ctx context.Context, input repair.NewPledge) (repair.Pledge, error) {
	var pledge repair.Pledge
	err := c.do(ctx, call{
		op:     "create_pledge",
		method: http.MethodPost,
		path:   pledgesPath,
		body:   input,
	}, &pledge)
	return pledge, err
}

// UpdatePledge patches the fields set in update.
func (c *Client) UpdatePledge(ctx context.Context, id string, update repair.PledgeUpdate) (repair.Pledge, error) {
	var pledge repair.Pledge
	err := c.do(ctx, call{
		op:     "update_pledge",
		method: http.MethodPatch,
		path:   pledgesPath + "/" + pathID(id),
		body:   update,
	}, &pledge)
	return pledge, err
}
