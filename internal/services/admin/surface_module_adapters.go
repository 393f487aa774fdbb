package admin

import (
	"net/http"

	actionsmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/actions"
	dashboardmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/dashboard"
	historymodule "github.com/louisbranch/conectareparo/internal/services/admin/module/history"
	maintenancesmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/maintenances"
	pledgesmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/pledges"
)

type dashboardModuleService struct {
	handler *Handler
}

func newDashboardModuleService(h *Handler) dashboardmodule.Service {
	if h == nil {
		return nil
	}
	return dashboardModuleService{handler: h}
}

func (s dashboardModuleService) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboard(w, r)
}

func (s dashboardModuleService) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboardContent(w, r)
}

func (s dashboardModuleService) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	s.handler.handleNotFound(w, r)
}

type maintenancesModuleService struct {
	handler *Handler
}

func newMaintenancesModuleService(h *Handler) maintenancesmodule.Service {
	if h == nil {
		return nil
	}
	return maintenancesModuleService{handler: h}
}

func (s maintenancesModuleService) HandleMaintenancesPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleMaintenancesPage(w, r)
}

func (s maintenancesModuleService) HandleMaintenancesTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleMaintenancesTable(w, r)
}

func (s maintenancesModuleService) HandleMaintenanceNew(w http.ResponseWriter, r *http.Request) {
	s.handler.handleMaintenanceNew(w, r)
}

func (s maintenancesModuleService) HandleMaintenanceCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleMaintenanceCreate(w, r)
}

func (s maintenancesModuleService) HandleMaintenanceDetail(w http.ResponseWriter, r *http.Request, maintenanceID string, tab string) {
	s.handler.handleMaintenanceDetail(w, r, maintenanceID, tab)
}

func (s maintenancesModuleService) HandleMaintenanceEdit(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	s.handler.handleMaintenanceEdit(w, r, maintenanceID)
}

func (s maintenancesModuleService) HandleMaintenanceUpdate(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	s.handler.handleMaintenanceUpdate(w, r, maintenanceID)
}

func (s maintenancesModuleService) HandleActionNew(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	s.handler.handleActionNew(w, r, maintenanceID)
}

func (s maintenancesModuleService) HandleActionCreate(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	s.handler.handleActionCreate(w, r, maintenanceID)
}

func (s maintenancesModuleService) HandleActionDetail(w http.ResponseWriter, r *http.Request, maintenanceID string, actionID string) {
	s.handler.handleActionDetail(w, r, maintenanceID, actionID)
}

func (s maintenancesModuleService) HandleActionEdit(w http.ResponseWriter, r *http.Request, maintenanceID string, actionID string) {
	s.handler.handleActionEdit(w, r, maintenanceID, actionID)
}

func (s maintenancesModuleService) HandleActionUpdate(w http.ResponseWriter, r *http.Request, maintenanceID string, actionID string) {
	s.handler.handleActionUpdate(w, r, maintenanceID, actionID)
}

type actionsModuleService struct {
	handler *Handler
}

func newActionsModuleService(h *Handler) actionsmodule.Service {
	if h == nil {
		return nil
	}
	return actionsModuleService{handler: h}
}

func (s actionsModuleService) HandleActionsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleActionsPage(w, r)
}

func (s actionsModuleService) HandleActionsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleActionsTable(w, r)
}

func (s actionsModuleService) HandleActionsExport(w http.ResponseWriter, r *http.Request) {
	s.handler.handleActionsExport(w, r)
}

func (s actionsModuleService) HandleMaterialRow(w http.ResponseWriter, r *http.Request) {
	s.handler.handleMaterialRow(w, r)
}

type pledgesModuleService struct {
	handler *Handler
}

func newPledgesModuleService(h *Handler) pledgesmodule.Service {
	if h == nil {
		return nil
	}
	return pledgesModuleService{handler: h}
}

func (s pledgesModuleService) HandlePledgesPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handlePledgesPage(w, r)
}

func (s pledgesModuleService) HandlePledgesTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handlePledgesTable(w, r)
}

func (s pledgesModuleService) HandlePledgeNew(w http.ResponseWriter, r *http.Request) {
	s.handler.handlePledgeNew(w, r)
}

func (s pledgesModuleService) HandlePledgeCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handlePledgeCreate(w, r)
}

func (s pledgesModuleService) HandlePledgeDetail(w http.ResponseWriter, r *http.Request, pledgeID string) {
	s.handler.handlePledgeDetail(w, r, pledgeID)
}

func (s pledgesModuleService) HandlePledgeEdit(w http.ResponseWriter, r *http.Request, pledgeID string) {
	s.handler.handlePledgeEdit(w, r, pledgeID)
}

func (s pledgesModuleService) HandlePledgeUpdate(w http.ResponseWriter, r *http.Request, pledgeID string) {
	s.handler.handlePledgeUpdate(w, r, pledgeID)
}

type historyModuleService struct {
	handler *Handler
}

func newHistoryModuleService(h *Handler) historymodule.Service {
	if h == nil {
		return nil
	}
	return historyModuleService{handler: h}
}

func (s historyModuleService) HandleHistoryPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleHistoryPage(w, r)
}

func (s historyModuleService) HandleHistoryTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleHistoryTable(w, r)
}
