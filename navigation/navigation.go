// Package navigation evaluates which chrome links a viewer may see. The host
// frontend owns the actual routing and login/logout actions; this only
// answers "which items".
package navigation

// Roles that may publish listings.
const (
	RoleOwner    = "owner"
	RoleBroker   = "broker"
	RoleLegalRep = "legal_rep"
	RoleTenant   = "tenant"
)

// GroupInternal switches the whole link set to the staff subset.
const GroupInternal = "internal"

// Viewer is the minimal identity the rules need.
type Viewer struct {
	Authenticated bool
	Role          string
	Group         string
}

// Item is one navigation entry; View is the host-side route key.
type Item struct {
	Label string `json:"label"`
	View  string `json:"view"`
}

// Items returns the nav items for v, in display order.
func Items(v Viewer) []Item {
	if v.Authenticated && v.Group == GroupInternal {
		return []Item{
			{Label: "Painel", View: "staff-dashboard"},
			{Label: "Moderação", View: "staff-moderation"},
			{Label: "Relatórios", View: "staff-reports"},
			{Label: "Sair", View: "logout"},
		}
	}

	items := []Item{
		{Label: "Início", View: "home"},
		{Label: "Imóveis", View: "listings"},
	}
	if !v.Authenticated {
		return append(items, Item{Label: "Entrar", View: "login"})
	}

	if CanPublish(v.Role) {
		items = append(items, Item{Label: "Anunciar Imóvel", View: "add-listing"})
	}
	items = append(items,
		Item{Label: "Mensagens", View: "messages"},
		Item{Label: "Sair", View: "logout"},
	)
	return items
}

// CanPublish reports whether role unlocks the add-listing entry.
func CanPublish(role string) bool {
	switch role {
	case RoleOwner, RoleBroker, RoleLegalRep:
		return true
	}
	return false
}
