package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/application"
	"github.com/brightsmile/clinic-api/internal/domain/entity"
	"github.com/brightsmile/clinic-api/pkg/response"
)

type PatientHandler struct {
	Svc    *application.PatientService
	Logger *logrus.Logger
}

func NewPatientHandler(svc *application.PatientService, logger *logrus.Logger) *PatientHandler {
	return &PatientHandler{Svc: svc, Logger: logger}
}

// patientRequest mirrors the wire payload. Fields are intentionally
// unvalidated: missing values pass through as zero values, and dentist_id
// carries the dentist's name, resolved to an id at write time.
type patientRequest struct {
	Name                string         `json:"name"`
	DOB                 string         `json:"dob"`
	Gender              string         `json:"gender"`
	Address             entity.Address `json:"address"`
	AppointmentDateTime string         `json:"appointment_date_time"`
	DentistID           string         `json:"dentist_id"`
}

func (r patientRequest) toInput() application.PatientInput {
	return application.PatientInput{
		Name:                r.Name,
		DOB:                 r.DOB,
		Gender:              r.Gender,
		Address:             r.Address,
		AppointmentDateTime: r.AppointmentDateTime,
		DentistName:         r.DentistID,
	}
}

// List GET /patients
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list patients failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// Create POST /patient
func (h *PatientHandler) Create(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if errors.Is(err, application.ErrDentistNotFound) {
		response.Error(c, http.StatusBadRequest, "A valid dentist name must be provided")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("create patient failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

// Update PUT /patient/:id
func (h *PatientHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid patient id")
		return
	}
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}
	res, err := h.Svc.Update(c.Request.Context(), id, req.toInput())
	if errors.Is(err, application.ErrDentistNotFound) {
		response.Error(c, http.StatusBadRequest, "A valid dentist name must be provided")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("update patient failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

// Delete DELETE /patient/:id
func (h *PatientHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid patient id")
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.Logger.WithError(err).Error("delete patient failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted."})
}

// Search GET /patients/search?q=&size=
func (h *PatientHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("patient search failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": hits})
}
