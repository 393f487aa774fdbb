package restclient

import (
	"context"
	"net/http"

	"github.com/louisbranch/conectareparo/internal/repair"
)

const actionsPath = "/api/v1/actions"

func maintenanceActionsPath(maintenanceID string) string {
	return maintenancesPath + "/" + pathID(maintenanceID) + "/actions"
}

// ListMaintenanceActions returns every action recorded for a maintenance.
func (c *Client) ListMaintenanceActions(ctx context.Context, maintenanceID string) ([]repair.Action, error) {
	var actions []repair.Action
	err := c.do(ctx, call{
		op:     "list_maintenance_actions",
		method: http.MethodGet,
		path:   maintenanceActionsPath(maintenanceID),
	}, &actions)
	return actions, err
}

// ListActions returns every action across maintenances.
func (c *Client) ListActions(ctx context.Context) ([]repair.Action, error) {
	var actions []repair.Action
	err := c.do(ctx, call{
		op:     "list_actions",
		method: http.MethodGet,
		path:   actionsPath,
	}, &actions)
	return actions, err
}

// GetAction returns one action of a maintenance.
func (c *Client) GetAction(ctx context.Context, maintenanceID, actionID string) (repair.Action, error) {
	var action repair.Action
	err := c.do(ctx, call{
		op:     "get_action",
		method: http.MethodGet,
		path:   maintenanceActionsPath(maintenanceID) + "/" + pathID(actionID),
	}, &action)
	return action, err
}

// CreateAction records an action for a maintenance.
func (c *Client) CreateAction(ctx context.Context, maintenanceID string, input repair.NewAction) (repair.Action, error) {
	var action repair.Action
	err := c.do(ctx, call{
		op:     "create_action",
		method: http.MethodPost,
		path:   maintenanceActionsPath(maintenanceID),
		body:   input,
	}, &action)
	return action, err
}

// UpdateAction replaces an action.
func (c *Client) UpdateAction(ctx context.Context, maintenanceID, actionID string, input repair.ActionUpdate) (repair.Action, error) {
	var action repair.Action
	err := c.do(ctx, call{
		op:     "update_action",
		method: http.MethodPut,
		path:   maintenanceActionsPath(maintenanceID) + "/" + pathID(actionID),
		body:   input,
	}, &action)
	return action, err
}
