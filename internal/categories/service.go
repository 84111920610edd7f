package categories

import (
	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

// Screen is the category list screen.
type Screen = crud.Screen[retail.Category, retail.NoFilter, Draft]

var messages = crud.Messages{
	ListFailed: "Erro ao carregar categorias.",
	Created:    "Categoria criada.",
	Updated:    "Categoria atualizada.",
	SaveFailed: "Erro ao salvar categoria.",
	Removed:    "Categoria removida.",
	Imported:   "Dados importados com sucesso.",
}

// Service builds category screens over a backend resource.
type Service struct {
	resource crud.Resource[retail.Category, retail.NoFilter]
	ordering crud.Ordering
}

// NewService constructs a Service.
func NewService(resource crud.Resource[retail.Category, retail.NoFilter], ordering crud.Ordering) *Service {
	return &Service{resource: resource, ordering: ordering}
}

// Schema binds drafts to categories.
func Schema() crud.Schema[retail.Category, retail.NoFilter, Draft] {
	return crud.Schema[retail.Category, retail.NoFilter, Draft]{
		Messages: messages,
		Neutral:  func() retail.NoFilter { return retail.NoFilter{} },
		Blank:    blank,
		Draft:    FromEntity,
		DraftID:  draftID,
		Payload:  Payload,
	}
}

// Screen returns a fresh screen reporting to notifier.
func (s *Service) Screen(notifier crud.Notifier) *Screen {
	return crud.NewScreen(s.resource, Schema(), notifier, crud.WithOrdering(s.ordering))
}
