package entry

import "dream/internal/models"

// Crumb is one breadcrumb of the navigator path.
type Crumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NodeView is one cell of the category grid.
type NodeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	ColorHint   string `json:"color_hint,omitempty"`
	HasChildren bool   `json:"has_children"`
	Selected    bool   `json:"selected"`
}

// View is the render model of a session.
type View struct {
	ID            string                 `json:"id"`
	Type          models.TransactionType `json:"type"`
	Editing       bool                   `json:"editing"`
	TransactionID *string                `json:"transaction_id,omitempty"`
	Breadcrumbs   []Crumb                `json:"breadcrumbs"`
	Nodes         []NodeView             `json:"nodes"`
	Category      *string                `json:"category,omitempty"`
	SubCategory   *string                `json:"sub_category,omitempty"`
	Amount        string                 `json:"amount"`
	Date          string                 `json:"date"`
	Note          string                 `json:"note"`
	CanSubmit     bool                   `json:"can_submit"`
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	v := View{
		ID:          s.id,
		Type:        s.nav.Type(),
		Editing:     s.original != nil,
		Breadcrumbs: []Crumb{},
		Nodes:       []NodeView{},
		Category:    copyOptional(s.pendingCategory),
		SubCategory: copyOptional(s.pendingSub),
		Amount:      s.amount,
		Date:        s.date.Format(DateLayout),
		Note:        s.note,
		CanSubmit:   s.CanSubmit(),
	}
	if s.original != nil {
		v.TransactionID = models.Ptr(s.original.ID)
	}
	for _, n := range s.nav.Breadcrumbs() {
		v.Breadcrumbs = append(v.Breadcrumbs, Crumb{ID: n.ID, Name: n.Name})
	}
	for _, n := range s.nav.Visible() {
		v.Nodes = append(v.Nodes, NodeView{
			ID:          n.ID,
			Name:        n.Name,
			Icon:        n.Icon,
			ColorHint:   n.ColorHint,
			HasChildren: n.IsBranch(),
			Selected:    s.nav.IsSelected(n),
		})
	}
	return v
}
