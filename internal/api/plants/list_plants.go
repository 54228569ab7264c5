package plants

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"plantcompareapi/internal/api"
	"plantcompareapi/pkg/config"
	"plantcompareapi/pkg/schemas"
	"plantcompareapi/pkg/seed"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) ListPlants(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	query, limit, err := parseListParams(r)
	if err != nil {
		resParams.ResData = &struct {
			InvalidParams bool `json:"invalidParams"`
		}{InvalidParams: true}
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// demo fallback when no database is configured
	if !h.Store.Available() {
		matched := []schemas.Plant{}
		for _, p := range seed.Plants() {
			if MatchSeed(p, query) {
				matched = append(matched, p)
			}
		}
		if int64(len(matched)) > limit {
			matched = matched[:limit]
		}
		resParams.ResData = matched
		resParams.Code = http.StatusOK
		h.Res(resParams)
		return
	}

	docs, err := h.Store.List(ctx, config.PLANT_COLLECTION, BuildFilter(query), limit)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	if docs == nil {
		docs = []bson.M{}
	}
	for _, d := range docs {
		stringifyMeta(d)
	}

	resParams.ResData = docs
	resParams.Code = http.StatusOK
	h.Res(resParams)

}

func parseListParams(r *http.Request) (Query, int64, error) {

	qp := r.URL.Query()

	query := Query{
		Q:         qp.Get("q"),
		Light:     qp.Get("light"),
		Water:     qp.Get("water"),
		CareLevel: qp.Get("care_level"),
		Size:      qp.Get("size"),
		Tag:       qp.Get("tag"),
	}

	if raw := qp.Get("pet_friendly"); raw != "" {
		pf, err := strconv.ParseBool(raw)
		if err != nil {
			return Query{}, 0, err
		}
		query.PetFriendly = &pf
	}

	limit := int64(config.DEFAULT_LIST_LIMIT)
	if raw := qp.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Query{}, 0, err
		}
		if n < 0 {
			return Query{}, 0, fmt.Errorf("negative limit %d", n)
		}
		limit = n
	}

	return query, limit, nil

}

// stringifyMeta renders the generated id and timestamps as strings, matching
// the wire contract for list responses.
func stringifyMeta(d bson.M) {

	if id, ok := d["_id"].(bson.ObjectID); ok {
		d["_id"] = id.Hex()
	}
	for _, key := range []string{"created_at", "updated_at"} {
		if ts, ok := d[key].(bson.DateTime); ok {
			d[key] = ts.Time().UTC().Format(time.RFC3339Nano)
		}
	}

}
