package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/matryer/is"

	"github.com/careflow/homecare-api/internal/httpresp"
	"github.com/careflow/homecare-api/internal/models"
)

func TestAssignAndListClientServices(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	c := seedClient(t, db, "Rosa", "Diaz", "01234")
	personal := seedService(t, db, "Personal Care")
	lifting := seedService(t, db, "Lifting")
	seedService(t, db, "Meal Prep") // never assigned

	for _, sv := range []models.Service{personal, lifting} {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/clients/%d/services", c.ID),
			map[string]any{"service_id": sv.ID})
		is.Equal(w.Code, http.StatusCreated)
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/clients/%d/services", c.ID), nil)
	is.Equal(w.Code, http.StatusOK)

	resp := decode[httpresp.ListResponse[models.Service]](t, w)
	is.Equal(resp.Total, 2)
	is.Equal(resp.Data[0].ServiceName, "Personal Care")
	is.Equal(resp.Data[1].ServiceName, "Lifting")
}

func TestAssignServiceTwiceConflicts(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	c := seedClient(t, db, "Rosa", "Diaz", "01234")
	sv := seedService(t, db, "Personal Care")

	body := map[string]any{"service_id": sv.ID}
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/clients/%d/services", c.ID), body)
	is.Equal(w.Code, http.StatusCreated)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/clients/%d/services", c.ID), body)
	is.Equal(w.Code, http.StatusConflict)
}

func TestAssignServiceMissingClientOrService(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	c := seedClient(t, db, "Rosa", "Diaz", "01234")
	sv := seedService(t, db, "Personal Care")

	w := doJSON(t, r, http.MethodPost, "/clients/9999/services",
		map[string]any{"service_id": sv.ID})
	is.Equal(w.Code, http.StatusNotFound)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/clients/%d/services", c.ID),
		map[string]any{"service_id": 9999})
	is.Equal(w.Code, http.StatusNotFound)
}

func TestUnassignService(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	c := seedClient(t, db, "Rosa", "Diaz", "01234")
	sv := seedService(t, db, "Personal Care")
	is.NoErr(db.Create(&models.ClientService{ClientID: c.ID, ServiceID: sv.ID}).Error)

	path := fmt.Sprintf("/clients/%d/services/%d", c.ID, sv.ID)
	w := doJSON(t, r, http.MethodDelete, path, nil)
	is.Equal(w.Code, http.StatusNoContent)

	w = doJSON(t, r, http.MethodDelete, path, nil)
	is.Equal(w.Code, http.StatusNotFound)
}

func TestListServicesCatalogue(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	seedService(t, db, "Personal Care")
	seedService(t, db, "Lifting")

	w := doJSON(t, r, http.MethodGet, "/services", nil)
	is.Equal(w.Code, http.StatusOK)

	services := decode[[]models.Service](t, w)
	is.Equal(len(services), 2)
	is.Equal(services[0].ServiceName, "Personal Care")
}

func TestGetServiceNotFound(t *testing.T) {
	is := is.New(t)
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/services/9999", nil)
	is.Equal(w.Code, http.StatusNotFound)
}
