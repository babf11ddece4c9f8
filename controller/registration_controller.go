package controller

import (
	"errors"
	"net/http"

	localCache "rimashaar/cache"
	"rimashaar/model"
	"rimashaar/service"
	"rimashaar/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type RegistrationController struct {
	registrationSvc service.RegistrationService
}

func NewRegistrationController(s service.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationSvc: s}
}

func (ctrl *RegistrationController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/registration")
	{
		group.POST("", ctrl.Submit)
		group.GET("/contact-kind", ctrl.ContactKind)
	}
}

// Submit godoc
// @Summary      Submit Registration
// @Description  Validates the form, registers the user and opens an OTP session
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        form  body      model.RegistrationForm  true  "Registration form"
// @Success      200   {object}  model.Response
// @Failure      400   {object}  model.Response
// @Router       /registration [post]
func (ctrl *RegistrationController) Submit(c *gin.Context) {
	var form model.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "Invalid request payload", Error: "bad_request"})
		return
	}

	session, err := ctrl.registrationSvc.Submit(c.Request.Context(), form)
	if err != nil {
		var verrs model.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, NewErrorResponse(err, verrs))
			return
		}
		log.Warn().Err(err).Msg("registration failed")
		c.JSON(statusFor(err), NewErrorResponse(err, nil))
		return
	}

	sessionID := uuid.NewString()
	localCache.PutOtpSession(sessionID, session)

	c.JSON(http.StatusOK, NewResponse(model.OtpSessionDto{
		SessionID: sessionID,
		State:     session.State(),
	}, "OTP sent to "+session.Request().Contact()))
}

// ContactKind tells the UI whether the contact field currently reads as a phone number.
func (ctrl *RegistrationController) ContactKind(c *gin.Context) {
	kind := validator.ContactKindOf(c.Query("value"))
	c.JSON(http.StatusOK, NewResponse(kind, ""))
}
