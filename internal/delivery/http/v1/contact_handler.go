package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	schema    *validation.Schema
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase, schema *validation.Schema) {
	handler := &ContactHandler{
		contactUC: contactUC,
		schema:    schema,
	}

	r.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate and store a contact form message.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.MessageInput  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactResponse
// @Failure      422      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var in domain.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.Validation(validation.Malformed(err).Fields))
		return
	}

	msg, err := h.schema.Message(in)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			c.Error(apperror.Validation(vErr.Fields))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	id, err := h.contactUC.Submit(c.Request.Context(), msg)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.ContactResponse{Status: "ok", ID: id})
}
