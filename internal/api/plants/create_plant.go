package plants

import (
	"encoding/json"
	"errors"
	"net/http"

	"plantcompareapi/internal/api"
	"plantcompareapi/internal/store"
	"plantcompareapi/pkg/config"
	"plantcompareapi/pkg/schemas"
)

func (h *Handler) CreatePlant(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	var plant schemas.Plant

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&plant); err != nil {
		if detail := api.ValidationDetail(err); detail != nil {
			resParams.ResData = &struct {
				Detail []api.FieldError `json:"detail"`
			}{Detail: detail}
			resParams.Code = http.StatusUnprocessableEntity
		} else {
			resParams.Code = http.StatusBadRequest
		}
		resParams.Err = err
		h.Res(resParams)
		return
	}

	plant.ApplyDefaults()
	resParams.ReqData = plant

	if err := h.Validate.Struct(&plant); err != nil {
		resParams.ResData = &struct {
			Detail []api.FieldError `json:"detail"`
		}{Detail: api.ValidationDetail(err)}
		resParams.Code = http.StatusUnprocessableEntity
		resParams.Err = err
		h.Res(resParams)
		return
	}

	id, err := h.Store.Create(ctx, config.PLANT_COLLECTION, &plant)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			resParams.ResData = &struct {
				Detail string `json:"detail"`
			}{Detail: "Database not configured"}
			resParams.Code = http.StatusServiceUnavailable
		} else {
			resParams.Code = http.StatusInternalServerError
		}
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Id string `json:"id"`
	}{Id: id.Hex()}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
