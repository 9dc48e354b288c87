package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"crashph/internal/api/handlers/http/admin"
	mock_admin "crashph/internal/api/handlers/http/admin/mocks"
	"crashph/internal/domain"
	"crashph/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestOfficeCreate_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	createdBy := uuid.New()
	officeID := uuid.New()

	reqBody := `{
		"office_name": "Makati Station 1",
		"email": "station1@crashph.ph",
		"password": "station-pass",
		"head_officer": "PCpt Reyes",
		"contact_number": "+63-2-555-0101",
		"latitude": 14.5547,
		"longitude": 121.0244,
		"created_by": "` + createdBy.String() + `"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/offices/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(domain.OfficeView{
			ID:         officeID.String(),
			OfficeName: "Makati Station 1",
			Email:      "station1@crashph.ph",
			CreatedBy:  createdBy.String(),
		}, nil).
		Times(1)

	h.OfficeCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.OfficeView](t, rr)
	if got.ID != officeID.String() {
		t.Fatalf("expected office_id=%s got=%s", officeID, got.ID)
	}
	// Credentials never appear in any office payload.
	if strings.Contains(rr.Body.String(), "password") {
		t.Fatalf("response leaks password field: %s", rr.Body.String())
	}
}

func TestOfficeCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockOfficeAdmin(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/offices/", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	h.OfficeCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestOfficeCreate_ValidationFailure_400(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"short_password", `{"office_name":"S1","email":"s1@crashph.ph","password":"short","head_officer":"X","contact_number":"1","latitude":14.5,"longitude":121.0,"created_by":"` + uuid.New().String() + `"}`},
		{"bad_email", `{"office_name":"S1","email":"not-an-email","password":"station-pass","head_officer":"X","contact_number":"1","latitude":14.5,"longitude":121.0,"created_by":"` + uuid.New().String() + `"}`},
		{"lat_out_of_range", `{"office_name":"S1","email":"s1@crashph.ph","password":"station-pass","head_officer":"X","contact_number":"1","latitude":95.0,"longitude":121.0,"created_by":"` + uuid.New().String() + `"}`},
		{"missing_created_by", `{"office_name":"S1","email":"s1@crashph.ph","password":"station-pass","head_officer":"X","contact_number":"1","latitude":14.5,"longitude":121.0}`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Service must never run on an invalid request.
			h := admin.NewHandler(newTestLogger(), mock_admin.NewMockOfficeAdmin(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/offices/", bytes.NewBufferString(c.body))
			rr := httptest.NewRecorder()

			h.OfficeCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestOfficeCreate_EmailConflict_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	reqBody := `{"office_name":"S1","email":"s1@crashph.ph","password":"station-pass","head_officer":"X","contact_number":"1","latitude":14.5,"longitude":121.0,"created_by":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/offices/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(domain.OfficeView{}, e.ErrConflict).
		Times(1)

	h.OfficeCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestOfficeList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/offices/", nil)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		List(gomock.Any()).
		Return([]domain.OfficeView{
			{ID: uuid.New().String(), OfficeName: "Makati Station 1"},
			{ID: uuid.New().String(), OfficeName: "Makati Station 2"},
		}, nil).
		Times(1)

	h.OfficeList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string][]domain.OfficeView](t, rr)
	if len(resp["offices"]) != 2 {
		t.Fatalf("expected 2 offices got=%d", len(resp["offices"]))
	}
}

func TestOfficeGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockOfficeAdmin(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/offices/bad/", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.OfficeGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestOfficeGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/offices/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Get(gomock.Any(), id).
		Return(domain.OfficeView{}, e.ErrNotFound).
		Times(1)

	h.OfficeGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestOfficeUpdate_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	body := `{"office_name":"Makati Station 1 Annex"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/offices/"+id.String()+"/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	name := "Makati Station 1 Annex"
	svc.EXPECT().
		Update(gomock.Any(), id, domain.UpdateOfficeRequest{OfficeName: &name}).
		Return(nil).
		Times(1)

	h.OfficeUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got=%q", rr.Body.String())
	}
}

func TestOfficeUpdate_EmailConflict_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	body := `{"email":"station2@crashph.ph"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/offices/"+id.String()+"/", bytes.NewBufferString(body))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(e.ErrConflict).
		Times(1)

	h.OfficeUpdate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestOfficeDelete_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/offices/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil).
		Times(1)

	h.OfficeDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestOfficeDelete_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockOfficeAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/offices/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Delete(gomock.Any(), id).
		Return(e.ErrNotFound).
		Times(1)

	h.OfficeDelete(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}
