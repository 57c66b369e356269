package treelist

import (
	"fmt"

	"fyne.io/fyne/v2"
	json "github.com/goccy/go-json"
)

const layoutVersion = 1

// LayoutRecord is the persisted state of one column.
type LayoutRecord struct {
	Key      string `json:"key"`
	ColumnID int    `json:"id"`
	Visible  bool   `json:"visible"`
	Width    int    `json:"width,omitempty"`
	WidthDPI int    `json:"dpi,omitempty"`
}

type layoutEnvelope struct {
	Version int            `json:"version"`
	Columns []LayoutRecord `json:"columns"`
}

// SaveLayout returns the order, visibility and width of every column.
func (h *Header) SaveLayout() []LayoutRecord {
	recs := make([]LayoutRecord, 0, len(h.columns))
	for _, c := range h.columns {
		r := LayoutRecord{Key: c.Key, ColumnID: c.ID, Visible: c.visible}
		if c.mode != Fill {
			r.Width, r.WidthDPI = c.width.Value, c.width.DPI
		}
		recs = append(recs, r)
	}
	return recs
}

// LoadLayout applies saved records. Records whose key is not registered are
// ignored, registered columns keep the stored relative order and columns
// missing from recs are appended with their current settings.
func (h *Header) LoadLayout(recs []LayoutRecord) {
	h.CancelResize()
	h.CancelReorder()

	ordered := make([]*Column, 0, len(h.columns))
	seen := make(map[*Column]bool, len(h.columns))
	for _, r := range recs {
		c := h.ColumnByKey(r.Key)
		if c == nil || seen[c] {
			continue
		}
		seen[c] = true
		ordered = append(ordered, c)
		c.visible = r.Visible
		if c.mode != Fill && r.WidthDPI > 0 && r.Width >= 0 {
			c.width = Width{Value: r.Width, DPI: r.WidthDPI}
		}
	}
	for _, c := range h.columns {
		if !seen[c] {
			ordered = append(ordered, c)
		}
	}
	h.columns = ordered
	h.relayout()
}

// MarshalLayout encodes the header layout.
func (h *Header) MarshalLayout() ([]byte, error) {
	return json.Marshal(layoutEnvelope{Version: layoutVersion, Columns: h.SaveLayout()})
}

// UnmarshalLayout decodes data produced by MarshalLayout and applies it.
// The layout is left untouched on error.
func (h *Header) UnmarshalLayout(data []byte) error {
	var env layoutEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode column layout: %w", err)
	}
	if env.Version != layoutVersion {
		return fmt.Errorf("column layout version %d: %w", env.Version, ErrInvalidArgument)
	}
	h.LoadLayout(env.Columns)
	return nil
}

// SaveLayoutPreference stores the layout of h under a key derived from ident.
func SaveLayoutPreference(p fyne.Preferences, ident string, h *Header) {
	data, err := h.MarshalLayout()
	if err != nil {
		fyne.LogError("Failed to encode column layout", err)
		return
	}
	p.SetString(layoutKeyPrefix+ident, string(data))
}

// LoadLayoutPreference restores a layout saved by SaveLayoutPreference. It
// reports whether a layout was applied; corrupt data is logged and skipped.
func LoadLayoutPreference(p fyne.Preferences, ident string, h *Header) bool {
	data := p.String(layoutKeyPrefix + ident)
	if data == "" {
		return false
	}
	if err := h.UnmarshalLayout([]byte(data)); err != nil {
		fyne.LogError("Failed to restore column layout "+ident, err)
		return false
	}
	return true
}
