package meta

import (
	"net/http"

	"plantcompareapi/internal/api"
	"plantcompareapi/pkg/config"

	"github.com/rivo/uniseg"
)

type dbDiagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// TestDatabase reports datastore reachability and configuration as
// human-readable status strings, for operational troubleshooting.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	diag := &dbDiagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Store.Available() {
		diag.Database = "✅ Available"
		diag.ConnectionStatus = "Connected"
		if err := h.Store.Ping(ctx); err != nil {
			diag.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else if names, err := h.Store.CollectionNames(ctx); err != nil {
			diag.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			diag.Collections = names
			diag.Database = "✅ Connected & Working"
		}
	} else {
		diag.Database = "⚠️ Available but not initialized"
	}

	diag.DatabaseURL = setFlag(config.ENV.DATABASE_URL)
	diag.DatabaseName = setFlag(config.ENV.DATABASE_NAME)

	resParams.ResData = diag
	resParams.Code = http.StatusOK
	h.Res(resParams)

}

func setFlag(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate caps s at n user-perceived characters without splitting a
// multi-byte sequence, so diagnostic strings stay valid UTF-8.
func truncate(s string, n int) string {
	gr := uniseg.NewGraphemes(s)
	count := 0
	for gr.Next() {
		count++
		if count > n {
			pos, _ := gr.Positions()
			return s[:pos]
		}
	}
	return s
}
