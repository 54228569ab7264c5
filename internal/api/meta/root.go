package meta

import (
	"net/http"

	"plantcompareapi/internal/api"
	"plantcompareapi/pkg/schemas"
)

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {

	resParams := &api.ResParams{W: w, R: r}
	resParams.ResData = &struct {
		Message string `json:"message"`
	}{Message: "Houseplant Comparison Backend is running"}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}

// GetSchema exposes the collection schemas for external tooling.
func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {

	resParams := &api.ResParams{W: w, R: r}
	resParams.ResData = map[string]any{
		"plant": schemas.PlantJSONSchema(),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
