package admin

import (
	"github.com/0xabhi/mpin-api/internal/store/audit"
)

type Handler struct {
	Sto audit.Store
}

func New(sto audit.Store) *Handler {
	return &Handler{Sto: sto}
}
