package handler

import (
	"net/http"

	"specforge/internal/catalog"
)

type catalogResponse struct {
	Categories            []catalog.Category  `json:"categories"`
	Blueprints            []catalog.Blueprint `json:"blueprints"`
	Frameworks            []string            `json:"frameworks"`
	Stylings              []string            `json:"stylings"`
	Backends              []string            `json:"backends"`
	Toolings              []string            `json:"toolings"`
	NotificationProviders []string            `json:"notificationProviders"`
	PaymentProviders      []string            `json:"paymentProviders"`
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Categories:            catalog.Categories,
		Blueprints:            catalog.Blueprints,
		Frameworks:            catalog.Frameworks,
		Stylings:              catalog.Stylings,
		Backends:              catalog.Backends,
		Toolings:              catalog.Toolings,
		NotificationProviders: catalog.NotificationProviders,
		PaymentProviders:      catalog.PaymentProviders,
	})
}
