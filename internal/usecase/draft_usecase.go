package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDraftNotFound = errors.New("draft not found")
)

const abbreviationMaxLen = 10

// NumberPatch is a tri-state numeric field update: absent (Set false), clear
// (Set true, nil value) or a new value.
type NumberPatch struct {
	Set   bool
	Value *float64
}

// DraftFieldPatch carries partial field updates for a draft. Nil pointers
// leave the field untouched.
type DraftFieldPatch struct {
	Name              *string
	Abbreviation      *string
	ServiceClass      *string
	Control           *string
	TimeUnit          *string
	Duration          NumberPatch
	DurationForecast  NumberPatch
	DeliveryDays      NumberPatch
	StandardQuantity  NumberPatch
	Value             NumberPatch
	RadiationExposure *bool
}

// EditorPatch carries updates to the working line item of an active editor.
type EditorPatch struct {
	ReferenceID *string
	Quantity    *float64
	UnitCost    *float64
}

// EditorState is a read-only view of a line-item editor.
type EditorState struct {
	Active      bool
	Mode        string
	EditingID   string
	ReferenceID string
	Quantity    float64
	UnitCost    float64
	TotalCost   float64
	CanSave     bool
}

// DraftState is the full view of a draft session returned by every draft
// operation: the service under construction plus both editor states.
type DraftState struct {
	DraftID        string
	Editing        bool
	Service        entities.Service
	ProcessEditor  EditorState
	MaterialEditor EditorState
}

// SubmitResult is the pair of submit outcomes: either Errors is non-empty and
// nothing was applied, or Service holds the persisted record. CostWarning is
// the non-blocking cost-above-value advisory and can accompany a success.
type SubmitResult struct {
	Service     *entities.Service
	Errors      entities.FieldErrors
	CostWarning bool
}

// IDraftUseCase manages service draft sessions: a draft is begun blank or as
// a copy of a persisted service, edited field by field and through the two
// line-item editors, then submitted or discarded. Derived costs are
// recomputed synchronously after every committed line-item mutation.

type IDraftUseCase interface {
	Begin(ctx context.Context, serviceID string) (DraftState, error)
	Get(ctx context.Context, draftID string) (DraftState, error)
	UpdateFields(ctx context.Context, draftID string, patch DraftFieldPatch) (DraftState, error)
	BeginAddItem(ctx context.Context, draftID string, kind LineItemKind) (DraftState, error)
	BeginEditItem(ctx context.Context, draftID string, kind LineItemKind, itemID string) (DraftState, error)
	UpdateEditor(ctx context.Context, draftID string, kind LineItemKind, patch EditorPatch) (DraftState, error)
	SaveItem(ctx context.Context, draftID string, kind LineItemKind) (DraftState, error)
	CancelItem(ctx context.Context, draftID string, kind LineItemKind) (DraftState, error)
	DeleteItem(ctx context.Context, draftID string, kind LineItemKind, itemID string) (DraftState, error)
	Submit(ctx context.Context, draftID string) (SubmitResult, error)
	Discard(ctx context.Context, draftID string) error
}

type draftSession struct {
	id             string
	original       *entities.Service
	service        entities.Service
	processEditor  *LineItemEditor
	materialEditor *LineItemEditor

	// mu serializes all operations on this session; the use-case level mu
	// only guards the sessions map.
	mu sync.Mutex
}

type DraftUseCase struct {
	repo      interfaces.IServiceRepository
	catalogs  interfaces.ICatalogProvider
	logger    *zap.Logger
	auditUser string

	mu       sync.Mutex // guards sessions
	sessions map[string]*draftSession
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IServiceRepository, catalogs interfaces.ICatalogProvider, logger *zap.Logger, auditUser string) *DraftUseCase {
	return &DraftUseCase{
		repo:      repo,
		catalogs:  catalogs,
		logger:    logger,
		auditUser: auditUser,
		sessions:  map[string]*draftSession{},
	}
}

func (u *DraftUseCase) Begin(ctx context.Context, serviceID string) (DraftState, error) {
	serviceID = strings.TrimSpace(serviceID)

	var sess *draftSession
	if serviceID == "" {
		sess = u.newSession(nil, entities.NewDraft())
	} else {
		existing, err := u.repo.GetByID(ctx, serviceID)
		if err != nil {
			return DraftState{}, err
		}
		if existing.ID == "" {
			return DraftState{}, ErrServiceNotFound
		}
		orig := existing.Clone()
		sess = u.newSession(&orig, existing.Clone())
	}

	u.mu.Lock()
	u.sessions[sess.id] = sess
	u.mu.Unlock()

	return u.state(sess), nil
}

func (u *DraftUseCase) newSession(original *entities.Service, draft entities.Service) *draftSession {
	return &draftSession{
		id:       uuid.NewString(),
		original: original,
		service:  draft,
		processEditor: NewLineItemEditor(KindProcess, func(id string) (string, float64, bool) {
			p, ok := u.catalogs.LookupProcess(id)
			return p.Name, p.BaseCost, ok
		}),
		materialEditor: NewLineItemEditor(KindMaterial, func(id string) (string, float64, bool) {
			m, ok := u.catalogs.LookupMaterial(id)
			return m.Name, m.BasePrice, ok
		}),
	}
}

func (u *DraftUseCase) Get(ctx context.Context, draftID string) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return u.state(sess), nil
}

func (u *DraftUseCase) UpdateFields(ctx context.Context, draftID string, patch DraftFieldPatch) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s := &sess.service
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Abbreviation != nil {
		s.Abbreviation = truncateRunes(*patch.Abbreviation, abbreviationMaxLen)
	}
	if patch.ServiceClass != nil {
		s.ServiceClass = *patch.ServiceClass
	}
	if patch.Control != nil {
		s.Control = *patch.Control
	}
	if patch.TimeUnit != nil {
		// Stored as given; an unknown unit is reported at submit time.
		s.TimeUnit = entities.TimeUnit(*patch.TimeUnit)
	}
	applyOptional(&s.Duration, patch.Duration)
	applyOptional(&s.DurationForecast, patch.DurationForecast)
	applyOptional(&s.StandardQuantity, patch.StandardQuantity)
	applyOptional(&s.Value, patch.Value)
	if patch.DeliveryDays.Set {
		// Clearing the field resets it to zero rather than blank, matching
		// the delivery-days input behavior.
		days := 0
		if patch.DeliveryDays.Value != nil {
			days = int(*patch.DeliveryDays.Value)
		}
		s.DeliveryDays = &days
	}
	if patch.RadiationExposure != nil {
		s.RadiationExposure = *patch.RadiationExposure
	}

	return u.state(sess), nil
}

func applyOptional(dst **float64, p NumberPatch) {
	if !p.Set {
		return
	}
	if p.Value == nil {
		*dst = nil
		return
	}
	v := *p.Value
	*dst = &v
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (u *DraftUseCase) BeginAddItem(ctx context.Context, draftID string, kind LineItemKind) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	editor, _, err := sess.editor(kind)
	if err != nil {
		return DraftState{}, err
	}
	editor.BeginAdd()
	return u.state(sess), nil
}

func (u *DraftUseCase) BeginEditItem(ctx context.Context, draftID string, kind LineItemKind, itemID string) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	editor, items, err := sess.editor(kind)
	if err != nil {
		return DraftState{}, err
	}
	if err := editor.BeginEdit(*items, itemID); err != nil {
		return DraftState{}, err
	}
	return u.state(sess), nil
}

func (u *DraftUseCase) UpdateEditor(ctx context.Context, draftID string, kind LineItemKind, patch EditorPatch) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	editor, _, err := sess.editor(kind)
	if err != nil {
		return DraftState{}, err
	}

	// Reference selection first: it resets quantity and unit cost, which an
	// accompanying quantity/cost in the same patch then overrides.
	if patch.ReferenceID != nil {
		if err := editor.SelectReference(*patch.ReferenceID); err != nil {
			return DraftState{}, err
		}
	}
	if patch.Quantity != nil {
		if err := editor.SetQuantity(*patch.Quantity); err != nil {
			return DraftState{}, err
		}
	}
	if patch.UnitCost != nil {
		if err := editor.SetUnitCost(*patch.UnitCost); err != nil {
			return DraftState{}, err
		}
	}

	return u.state(sess), nil
}

func (u *DraftUseCase) SaveItem(ctx context.Context, draftID string, kind LineItemKind) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	editor, items, err := sess.editor(kind)
	if err != nil {
		return DraftState{}, err
	}

	updated, err := editor.Save(*items)
	if err != nil {
		return DraftState{}, err
	}
	*items = updated
	sess.service.RecalculateCosts()

	return u.state(sess), nil
}

func (u *DraftUseCase) CancelItem(ctx context.Context, draftID string, kind LineItemKind) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	editor, _, err := sess.editor(kind)
	if err != nil {
		return DraftState{}, err
	}
	editor.Cancel()
	return u.state(sess), nil
}

func (u *DraftUseCase) DeleteItem(ctx context.Context, draftID string, kind LineItemKind, itemID string) (DraftState, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return DraftState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	editor, items, err := sess.editor(kind)
	if err != nil {
		return DraftState{}, err
	}

	*items = editor.Delete(*items, itemID)
	sess.service.RecalculateCosts()

	return u.state(sess), nil
}

func (u *DraftUseCase) Submit(ctx context.Context, draftID string) (SubmitResult, error) {
	sess, err := u.session(draftID)
	if err != nil {
		return SubmitResult{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.service.RecalculateCosts()
	if errs := entities.ValidateService(sess.service); len(errs) > 0 {
		u.logger.Info("draft submit rejected by validation",
			zap.String("draft_id", draftID),
			zap.Int("violations", len(errs)))
		return SubmitResult{Errors: errs}, nil
	}

	record := sess.service.Clone()

	var saved entities.Service
	if sess.original != nil {
		record.ID = sess.original.ID
		record.CreatedAt = sess.original.CreatedAt
		record.CreatedBy = sess.original.CreatedBy
		saved, err = u.repo.Update(ctx, record)
		if err != nil {
			return SubmitResult{}, err
		}
		if saved.ID == "" {
			// Stale draft: the service was deleted while being edited.
			u.logger.Warn("draft submit targets a missing service",
				zap.String("draft_id", draftID),
				zap.String("service_id", record.ID))
			return SubmitResult{}, ErrServiceNotFound
		}
	} else {
		record.ID = uuid.NewString()
		record.CreatedAt = time.Now().UTC()
		record.CreatedBy = u.auditUser
		saved, err = u.repo.Create(ctx, record)
		if err != nil {
			return SubmitResult{}, err
		}
	}

	u.mu.Lock()
	delete(u.sessions, draftID)
	u.mu.Unlock()

	u.logger.Info("draft submitted",
		zap.String("service_id", saved.ID),
		zap.Bool("edit", sess.original != nil),
		zap.Float64("total_cost", saved.TotalCost))

	return SubmitResult{Service: &saved, CostWarning: saved.CostExceedsValue()}, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, draftID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.sessions[draftID]; !ok {
		return ErrDraftNotFound
	}
	delete(u.sessions, draftID)
	return nil
}

func (u *DraftUseCase) session(draftID string) (*draftSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sess, ok := u.sessions[strings.TrimSpace(draftID)]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return sess, nil
}

func (s *draftSession) editor(kind LineItemKind) (*LineItemEditor, *[]entities.LineItem, error) {
	switch kind {
	case KindProcess:
		return s.processEditor, &s.service.Processes, nil
	case KindMaterial:
		return s.materialEditor, &s.service.Materials, nil
	}
	return nil, nil, ErrUnknownLineItemKind
}

func (u *DraftUseCase) state(sess *draftSession) DraftState {
	return DraftState{
		DraftID:        sess.id,
		Editing:        sess.original != nil,
		Service:        sess.service.Clone(),
		ProcessEditor:  editorState(sess.processEditor),
		MaterialEditor: editorState(sess.materialEditor),
	}
}

func editorState(e *LineItemEditor) EditorState {
	d := e.Draft()
	return EditorState{
		Active:      e.Active(),
		Mode:        e.Mode(),
		EditingID:   e.EditingID(),
		ReferenceID: d.ReferenceID,
		Quantity:    d.Quantity,
		UnitCost:    d.UnitCost,
		TotalCost:   d.Quantity * d.UnitCost,
		CanSave:     e.CanSave(),
	}
}
