package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/brightsmile/clinic-api/internal/interface/http"
)

// PatientModule wires the patient CRUD routes.
// GET /patients, GET /patients/search, POST /patient,
// PUT /patient/:id, DELETE /patient/:id — all public.
type PatientModule struct {
	Handler *handlers.PatientHandler
}

func NewPatientModule(h *handlers.PatientHandler) *PatientModule {
	return &PatientModule{Handler: h}
}

func (m *PatientModule) Register(rg *gin.RouterGroup) {
	rg.GET("/patients", m.Handler.List)
	rg.GET("/patients/search", m.Handler.Search)
	rg.POST("/patient", m.Handler.Create)
	rg.PUT("/patient/:id", m.Handler.Update)
	rg.DELETE("/patient/:id", m.Handler.Delete)
}
