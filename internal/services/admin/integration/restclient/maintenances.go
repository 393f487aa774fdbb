package restclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/louisbranch/conectareparo/internal/repair"
	"golang.org/x/sync/errgroup"
)

const maintenancesPath = "/api/v1/maintenances"

// MaintenanceFilter narrows a maintenance listing. Empty fields are not sent.
type MaintenanceFilter struct {
	Status   repair.MaintenanceStatus
	Category repair.Category
	Search   string
	PageRequest
}

func (f MaintenanceFilter) query() url.Values {
	query := url.Values{}
	setIfPresent(query, "status", string(f.Status))
	setIfPresent(query, "category", string(f.Category))
	setIfPresent(query, "search", f.Search)
	f.PageRequest.encode(query)
	return query
}

// ListMaintenances returns one page of maintenances.
func (c *Client) ListMaintenances(ctx context.Context, filter MaintenanceFilter) (Page[repair.Maintenance], error) {
	var page Page[repair.Maintenance]
	err := c.do(ctx, call{
		op:     "list_maintenances",
		method: http.MethodGet,
		path:   maintenancesPath,
		query:  filter.query(),
	}, &page)
	return page, err
}

// ListAllMaintenances drains every page matching filter. The filter's page
// and size are ignored.
func (c *Client) ListAllMaintenances(ctx context.Context, filter MaintenanceFilter) ([]repair.Maintenance, error) {
	filter.Size = listAllPageSize
	return drainPages(ctx, "list_all_maintenances", listAllMaxPages, func(ctx context.Context, number int) (Page[repair.Maintenance], error) {
		filter.Page = number
		return c.ListMaintenances(ctx, filter)
	})
}

// GetMaintenance returns a single maintenance.
func (c *Client) GetMaintenance(ctx context.Context, id string) (repair.Maintenance, error) {
	var maintenance repair.Maintenance
	err := c.do(ctx, call{
		op:     "get_maintenance",
		method: http.MethodGet,
		path:   maintenancesPath + "/" + pathID(id),
	}, &maintenance)
	return maintenance, err
}

// CreateMaintenance opens a maintenance request.
func (c *Client) CreateMaintenance(ctx context.Context, input repair.NewMaintenance) (repair.Maintenance, error) {
	var maintenance repair.Maintenance
	err := c.do(ctx, call{
		op:     "create_maintenance",
		method: http.MethodPost,
		path:   maintenancesPath,
		body:   input,
	}, &maintenance)
	return maintenance, err
}

// UpdateMaintenance patches the fields set in update.
func (c *Client) UpdateMaintenance(ctx context.Context, id string, update repair.MaintenanceUpdate) (repair.Maintenance, error) {
	var maintenance repair.Maintenance
	err := c.do(ctx, call{
		op:     "update_maintenance",
		method: http.MethodPatch,
		path:   maintenancesPath + "/" + pathID(id),
		body:   update,
	}, &maintenance)
	return maintenance, err
}

// GetMaintenanceDetail loads a maintenance with its actions and pledges
// concurrently. Any failed call fails the whole detail.
func (c *Client) GetMaintenanceDetail(ctx context.Context, id string) (repair.MaintenanceDetail, error) {
	var detail repair.MaintenanceDetail
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		maintenance, err := c.GetMaintenance(ctx, id)
		detail.Maintenance = maintenance
		return err
	})
	group.Go(func() error {
		actions, err := c.ListMaintenanceActions(ctx, id)
		detail.Actions = actions
		return err
	})
	group.Go(func() error {
		pledges, err := c.ListAllPledges(ctx, PledgeFilter{MaintenanceID: id})
		detail.Pledges = pledges
		return err
	})
	if err := group.Wait(); err != nil {
		return repair.MaintenanceDetail{}, err
	}
	return detail, nil
}
