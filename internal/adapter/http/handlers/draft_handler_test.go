package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinica_servicos/internal/adapter/persistence/repository"
	"clinica_servicos/internal/infrastructure/catalog"
	"clinica_servicos/internal/infrastructure/money"
	"clinica_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The draft handler tests run against the real use case, repository and
// catalogs: the handler is thin and the interesting behavior is the full
// form flow.
func newDraftRouter(t *testing.T) (*gin.Engine, *repository.ServiceMemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewServiceMemoryRepository(zap.NewNop())
	uc := usecase.NewDraftUseCase(repo, catalog.NewStaticCatalog(), zap.NewNop(), "current.user@empresa.com")
	h := NewDraftHandler(uc, money.NewBRLFormatter())

	r := gin.New()
	r.POST("/v1/drafts", h.BeginDraft)
	r.GET("/v1/drafts/:draft_id", h.GetDraft)
	r.PATCH("/v1/drafts/:draft_id", h.PatchDraft)
	r.DELETE("/v1/drafts/:draft_id", h.DiscardDraft)
	r.POST("/v1/drafts/:draft_id/submit", h.SubmitDraft)
	r.POST("/v1/drafts/:draft_id/editors/:kind", h.BeginAddLineItem)
	r.PATCH("/v1/drafts/:draft_id/editors/:kind", h.PatchLineItemEditor)
	r.DELETE("/v1/drafts/:draft_id/editors/:kind", h.CancelLineItem)
	r.POST("/v1/drafts/:draft_id/editors/:kind/save", h.SaveLineItem)
	r.POST("/v1/drafts/:draft_id/editors/:kind/items/:item_id/edit", h.BeginEditLineItem)
	r.DELETE("/v1/drafts/:draft_id/editors/:kind/items/:item_id", h.DeleteLineItem)
	return r, repo
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type draftBody struct {
	DraftID string `json:"draftId"`
	Editing bool   `json:"editing"`
	Service struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Duration     *float64 `json:"duration"`
		ProcessCost  float64  `json:"processCost"`
		MaterialCost float64  `json:"materialCost"`
		TotalCost    float64  `json:"totalCost"`
	} `json:"service"`
	ProcessEditor struct {
		Active    bool    `json:"active"`
		Mode      string  `json:"mode"`
		Quantity  float64 `json:"quantity"`
		UnitCost  float64 `json:"unitCost"`
		TotalCost float64 `json:"totalCost"`
		CanSave   bool    `json:"canSave"`
	} `json:"processEditor"`
}

func decodeDraft(t *testing.T, w *httptest.ResponseRecorder) draftBody {
	t.Helper()
	var body draftBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal draft response: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestDraftHandler_CreateFlow(t *testing.T) {
	r, repo := newDraftRouter(t)

	w := do(t, r, http.MethodPost, "/v1/drafts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("begin: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	draftID := decodeDraft(t, w).DraftID
	if draftID == "" {
		t.Fatal("begin: expected a draft id")
	}

	w = do(t, r, http.MethodPatch, "/v1/drafts/"+draftID,
		`{"name":"Limpeza Profunda","serviceClass":"Higiene","value":"300"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch fields: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	// Process: select Profilaxia (base cost 80), then override to 2 x 50.
	if w = do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/processes", ""); w.Code != http.StatusOK {
		t.Fatalf("begin add process: expected 200, got %d", w.Code)
	}
	w = do(t, r, http.MethodPatch, "/v1/drafts/"+draftID+"/editors/processes", `{"processId":"proc-2"}`)
	body := decodeDraft(t, w)
	if body.ProcessEditor.Quantity != 1 || body.ProcessEditor.UnitCost != 80 {
		t.Fatalf("selecting a reference should reset quantity and cost: %+v", body.ProcessEditor)
	}
	w = do(t, r, http.MethodPatch, "/v1/drafts/"+draftID+"/editors/processes", `{"quantity":"2","cost":50}`)
	if body = decodeDraft(t, w); body.ProcessEditor.TotalCost != 100 || !body.ProcessEditor.CanSave {
		t.Fatalf("unexpected editor state: %+v", body.ProcessEditor)
	}
	w = do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/processes/save", "")
	if body = decodeDraft(t, w); body.Service.ProcessCost != 100 {
		t.Fatalf("expected process cost 100, got %v", body.Service.ProcessCost)
	}

	// Material: 2 x 15.
	do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/materials", "")
	do(t, r, http.MethodPatch, "/v1/drafts/"+draftID+"/editors/materials", `{"materialId":"mat-3","quantity":2,"price":15}`)
	w = do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/materials/save", "")
	if body = decodeDraft(t, w); body.Service.MaterialCost != 30 || body.Service.TotalCost != 130 {
		t.Fatalf("expected 30/130, got %v/%v", body.Service.MaterialCost, body.Service.TotalCost)
	}

	w = do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/submit", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var submitted struct {
		Message string `json:"message"`
		Service struct {
			ID        string  `json:"id"`
			TotalCost float64 `json:"totalCost"`
			CreatedBy string  `json:"createdBy"`
		} `json:"service"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("unmarshal submit response: %v", err)
	}
	if submitted.Message != "Serviço criado com sucesso" {
		t.Fatalf("unexpected message: %q", submitted.Message)
	}
	if submitted.Service.CreatedBy != "current.user@empresa.com" {
		t.Fatalf("unexpected author: %q", submitted.Service.CreatedBy)
	}

	persisted, err := repo.GetByID(context.Background(), submitted.Service.ID)
	if err != nil || persisted.ID == "" {
		t.Fatalf("expected the service persisted, got %+v err=%v", persisted, err)
	}
	if persisted.TotalCost != 130 {
		t.Fatalf("expected persisted total 130, got %v", persisted.TotalCost)
	}

	// The session is gone after a successful submit.
	if w = do(t, r, http.MethodGet, "/v1/drafts/"+draftID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after submit, got %d", w.Code)
	}
}

func TestDraftHandler_ValidationFailureKeepsDraft(t *testing.T) {
	r, repo := newDraftRouter(t)

	draftID := decodeDraft(t, do(t, r, http.MethodPost, "/v1/drafts", "")).DraftID
	do(t, r, http.MethodPatch, "/v1/drafts/"+draftID, `{"name":"ab","timeUnit":"Meses"}`)

	w := do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/submit", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", w.Code, w.Body.String())
	}
	var body struct {
		Code   string            `json:"code"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Code != "VALIDATION_FAILED" {
		t.Fatalf("unexpected code: %q", body.Code)
	}
	for _, field := range []string{"name", "serviceClass", "timeUnit"} {
		if body.Errors[field] == "" {
			t.Fatalf("expected an error for %q, got %v", field, body.Errors)
		}
	}

	if w = do(t, r, http.MethodGet, "/v1/drafts/"+draftID, ""); w.Code != http.StatusOK {
		t.Fatalf("draft should survive a rejected submit, got %d", w.Code)
	}
	services, _ := repo.List(context.Background())
	if len(services) != 0 {
		t.Fatalf("nothing should be persisted, got %d services", len(services))
	}
}

func TestDraftHandler_EditFlow(t *testing.T) {
	r, repo := newDraftRouter(t)
	repo.Seed(repository.SampleServices())

	w := do(t, r, http.MethodPost, "/v1/drafts", `{"serviceId":"srv-1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeDraft(t, w)
	if !body.Editing || body.Service.ID != "srv-1" {
		t.Fatalf("expected an editing draft of srv-1: %+v", body)
	}

	do(t, r, http.MethodPatch, "/v1/drafts/"+body.DraftID, `{"name":"Limpeza Dentária Completa"}`)
	w = do(t, r, http.MethodPost, "/v1/drafts/"+body.DraftID+"/submit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("edit submit: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var submitted struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if submitted.Message != "Serviço editado com sucesso" {
		t.Fatalf("unexpected message: %q", submitted.Message)
	}

	persisted, _ := repo.GetByID(context.Background(), "srv-1")
	if persisted.Name != "Limpeza Dentária Completa" {
		t.Fatalf("expected the rename persisted, got %q", persisted.Name)
	}
}

func TestDraftHandler_ErrorPaths(t *testing.T) {
	r, _ := newDraftRouter(t)
	draftID := decodeDraft(t, do(t, r, http.MethodPost, "/v1/drafts", "")).DraftID

	t.Run("begin with unknown service id", func(t *testing.T) {
		if w := do(t, r, http.MethodPost, "/v1/drafts", `{"serviceId":"nope"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		if w := do(t, r, http.MethodPatch, "/v1/drafts/"+draftID, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown draft id", func(t *testing.T) {
		if w := do(t, r, http.MethodGet, "/v1/drafts/nope", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unknown kind segment", func(t *testing.T) {
		if w := do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/tools", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save without a reference", func(t *testing.T) {
		do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/processes", "")
		if w := do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/processes/save", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		do(t, r, http.MethodDelete, "/v1/drafts/"+draftID+"/editors/processes", "")
	})

	t.Run("editor patch while idle", func(t *testing.T) {
		if w := do(t, r, http.MethodPatch, "/v1/drafts/"+draftID+"/editors/materials", `{"materialId":"mat-1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("edit a missing line item", func(t *testing.T) {
		if w := do(t, r, http.MethodPost, "/v1/drafts/"+draftID+"/editors/processes/items/nope/edit", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_NullClearsNumericField(t *testing.T) {
	r, _ := newDraftRouter(t)
	draftID := decodeDraft(t, do(t, r, http.MethodPost, "/v1/drafts", "")).DraftID

	w := do(t, r, http.MethodPatch, "/v1/drafts/"+draftID, `{"duration":"30"}`)
	if body := decodeDraft(t, w); body.Service.Duration == nil || *body.Service.Duration != 30 {
		t.Fatalf("expected duration 30, got %+v", body.Service.Duration)
	}

	w = do(t, r, http.MethodPatch, "/v1/drafts/"+draftID, `{"duration":null}`)
	if body := decodeDraft(t, w); body.Service.Duration != nil {
		t.Fatalf("null must clear the field, got %v", *body.Service.Duration)
	}

	// A payload that never mentions the field leaves it alone.
	do(t, r, http.MethodPatch, "/v1/drafts/"+draftID, `{"duration":15}`)
	w = do(t, r, http.MethodPatch, "/v1/drafts/"+draftID, `{"name":"Nome Qualquer"}`)
	if body := decodeDraft(t, w); body.Service.Duration == nil || *body.Service.Duration != 15 {
		t.Fatalf("absent field must stay untouched, got %+v", body.Service.Duration)
	}
}

func TestDraftHandler_Discard(t *testing.T) {
	r, _ := newDraftRouter(t)
	draftID := decodeDraft(t, do(t, r, http.MethodPost, "/v1/drafts", "")).DraftID

	if w := do(t, r, http.MethodDelete, "/v1/drafts/"+draftID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/v1/drafts/"+draftID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after discard, got %d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/v1/drafts/"+draftID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("discarding twice: expected 404, got %d", w.Code)
	}
}
