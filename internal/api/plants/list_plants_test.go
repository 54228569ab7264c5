package plants

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plantcompareapi/internal/api"
	"plantcompareapi/internal/store"
	"plantcompareapi/pkg/schemas"
	"plantcompareapi/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	v := validator.New()
	if err := v.RegisterValidation("maxgraphemes", utils.MaxGraphemesValidator); err != nil {
		t.Fatalf("register validation: %v", err)
	}
	return &Handler{Handler: &api.Handler{
		Logger:   zap.NewNop(),
		Validate: v,
		Store:    &store.Store{},
	}}
}

func listPlants(t *testing.T, h *Handler, target string) (*httptest.ResponseRecorder, []schemas.Plant) {
	t.Helper()
	req := httptest.NewRequest("GET", target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ListPlants(rr, req)

	var plants []schemas.Plant
	if rr.Code == http.StatusOK {
		if err := json.Unmarshal(rr.Body.Bytes(), &plants); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rr, plants
}

func TestListPlants_SeedFallbackNoParams(t *testing.T) {
	h := newTestHandler(t)

	rr, plants := listPlants(t, h, "/plants")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if len(plants) != 5 {
		t.Fatalf("got %d records, want the 5 seed records", len(plants))
	}
	if plants[0].Name != "Monstera Deliciosa" {
		t.Errorf("first record name = %q, want Monstera Deliciosa", plants[0].Name)
	}
	if plants[0].Light != "bright" {
		t.Errorf("first record light = %q, want bright", plants[0].Light)
	}
}

func TestListPlants_SeedFallbackLightLow(t *testing.T) {
	h := newTestHandler(t)

	_, plants := listPlants(t, h, "/plants?light=low")
	want := []string{"Snake Plant", "ZZ Plant", "Parlor Palm"}
	if len(plants) != len(want) {
		t.Fatalf("got %d records, want %d", len(plants), len(want))
	}
	for i, p := range plants {
		if p.Name != want[i] {
			t.Errorf("record[%d] = %q, want %q", i, p.Name, want[i])
		}
		if p.Light != "low" {
			t.Errorf("%s: light = %q, violates supplied criterion", p.Name, p.Light)
		}
	}
}

func TestListPlants_SeedFallbackConjunctive(t *testing.T) {
	h := newTestHandler(t)

	_, plants := listPlants(t, h, "/plants?light=low&water=moderate&pet_friendly=true")
	if len(plants) != 1 || plants[0].Name != "Parlor Palm" {
		t.Fatalf("got %v, want only Parlor Palm", plants)
	}
}

func TestListPlants_LimitTruncatesSeed(t *testing.T) {
	h := newTestHandler(t)

	_, plants := listPlants(t, h, "/plants?limit=2")
	if len(plants) != 2 {
		t.Fatalf("got %d records, want 2", len(plants))
	}
}

func TestListPlants_BadLimit(t *testing.T) {
	h := newTestHandler(t)

	for _, target := range []string{"/plants?limit=abc", "/plants?limit=-1", "/plants?pet_friendly=maybe"} {
		rr, _ := listPlants(t, h, target)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rr.Code)
		}
	}
}

func TestListPlants_SeedFallbackNoMatchesIsEmptyArray(t *testing.T) {
	h := newTestHandler(t)

	rr, plants := listPlants(t, h, "/plants?light=low&tag=trailing")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if len(plants) != 0 {
		t.Fatalf("got %d records, want none", len(plants))
	}
	if rr.Body.String() == "null\n" {
		t.Error("expected empty JSON array, got null")
	}
}
