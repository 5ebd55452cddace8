package usecase

import (
	"errors"

	"clinica_servicos/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrLineItemNotFound    = errors.New("line item not found")
	ErrNoReferenceSelected = errors.New("no catalog reference selected")
	ErrEditorIdle          = errors.New("line item editor is idle")
	ErrUnknownLineItemKind = errors.New("unknown line item kind")
)

// LineItemKind selects which collection and catalog an editor operates on.
type LineItemKind string

const (
	KindProcess  LineItemKind = "process"
	KindMaterial LineItemKind = "material"
)

// referenceLookup resolves a catalog id to its display name and base unit
// cost. It is consulted twice with different purposes: on reference selection
// for the base cost, and again at save time for the name snapshot.
type referenceLookup func(id string) (name string, baseCost float64, ok bool)

type editorMode int

const (
	modeIdle editorMode = iota
	modeAdding
	modeEditing
)

func (m editorMode) String() string {
	switch m {
	case modeAdding:
		return "adding"
	case modeEditing:
		return "editing"
	default:
		return "idle"
	}
}

// LineItemDraft is the working line item while the editor is in add or edit
// mode. Quantity and unit cost accept any numeric value here, negatives
// included; only submit-time service validation is strict.
type LineItemDraft struct {
	ReferenceID string
	Quantity    float64
	UnitCost    float64
}

// LineItemEditor is the add/edit state machine shared by the process and
// material collections. Add and edit-of-an-item are mutually exclusive states
// of the single mode field; Cancel is the only way out without committing.
type LineItemEditor struct {
	kind      LineItemKind
	lookup    referenceLookup
	mode      editorMode
	editingID string
	draft     LineItemDraft
}

func NewLineItemEditor(kind LineItemKind, lookup referenceLookup) *LineItemEditor {
	return &LineItemEditor{kind: kind, lookup: lookup}
}

// BeginAdd enters add mode with a cleared working draft (quantity 1, no
// reference, zero cost).
func (e *LineItemEditor) BeginAdd() {
	e.mode = modeAdding
	e.editingID = ""
	e.draft = LineItemDraft{Quantity: 1}
}

// BeginEdit enters edit mode for an existing item, seeding the working draft
// from its current values.
func (e *LineItemEditor) BeginEdit(items []entities.LineItem, itemID string) error {
	for _, it := range items {
		if it.ID == itemID {
			e.mode = modeEditing
			e.editingID = itemID
			e.draft = LineItemDraft{
				ReferenceID: it.ReferenceID,
				Quantity:    it.Quantity,
				UnitCost:    it.UnitCost,
			}
			return nil
		}
	}
	return ErrLineItemNotFound
}

// SelectReference switches the draft to another catalog entry. Switching
// resets the pricing context: quantity goes back to 1 and the unit cost is
// taken from the catalog, discarding whatever was typed before.
func (e *LineItemEditor) SelectReference(referenceID string) error {
	if e.mode == modeIdle {
		return ErrEditorIdle
	}
	cost := 0.0
	if _, base, ok := e.lookup(referenceID); ok {
		cost = base
	}
	e.draft = LineItemDraft{ReferenceID: referenceID, Quantity: 1, UnitCost: cost}
	return nil
}

func (e *LineItemEditor) SetQuantity(q float64) error {
	if e.mode == modeIdle {
		return ErrEditorIdle
	}
	e.draft.Quantity = q
	return nil
}

func (e *LineItemEditor) SetUnitCost(c float64) error {
	if e.mode == modeIdle {
		return ErrEditorIdle
	}
	e.draft.UnitCost = c
	return nil
}

// Save commits the working draft and returns the updated collection. It
// refuses to commit without a selected reference (the UI keeps the button
// disabled; the contract enforces it anyway). The reference name is resolved
// at save time, not at selection time. Editing replaces the item in place so
// collection order is preserved; adding appends with a fresh id.
func (e *LineItemEditor) Save(items []entities.LineItem) ([]entities.LineItem, error) {
	if e.mode == modeIdle {
		return nil, ErrEditorIdle
	}
	if e.draft.ReferenceID == "" {
		return nil, ErrNoReferenceSelected
	}

	name, _, _ := e.lookup(e.draft.ReferenceID)

	item := entities.LineItem{
		ID:            e.editingID,
		ReferenceID:   e.draft.ReferenceID,
		ReferenceName: name,
		Quantity:      e.draft.Quantity,
		UnitCost:      e.draft.UnitCost,
		TotalCost:     e.draft.Quantity * e.draft.UnitCost,
	}

	out := append([]entities.LineItem{}, items...)
	if e.mode == modeEditing {
		for i := range out {
			if out[i].ID == e.editingID {
				out[i] = item
				break
			}
		}
	} else {
		item.ID = uuid.NewString()
		out = append(out, item)
	}

	e.reset()
	return out, nil
}

// Cancel leaves add/edit mode and discards the working draft. The collection
// is untouched.
func (e *LineItemEditor) Cancel() {
	e.reset()
}

// Delete removes the item with the given id. Unknown ids are a no-op: the
// returned collection has the same elements in the same order.
func (e *LineItemEditor) Delete(items []entities.LineItem, itemID string) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}

func (e *LineItemEditor) reset() {
	e.mode = modeIdle
	e.editingID = ""
	e.draft = LineItemDraft{}
}

func (e *LineItemEditor) Active() bool         { return e.mode != modeIdle }
func (e *LineItemEditor) Mode() string         { return e.mode.String() }
func (e *LineItemEditor) EditingID() string    { return e.editingID }
func (e *LineItemEditor) Draft() LineItemDraft { return e.draft }
func (e *LineItemEditor) CanSave() bool        { return e.mode != modeIdle && e.draft.ReferenceID != "" }
