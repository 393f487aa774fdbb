// Package admin serves the repair dashboard: server-rendered pages for
// maintenances, their actions and volunteer pledges, backed by the remote
// maintenance API.
//
// Pages render in full on direct navigation and as main-content fragments
// for htmx requests. Tables load as separate fragments so filtering,
// sorting and paging never reload the page shell.
package admin
