package controller

import (
	"net/http"
	"strconv"

	localCache "rimashaar/cache"
	"rimashaar/customerrors"
	"rimashaar/model"
	"rimashaar/service"

	"github.com/gin-gonic/gin"
)

type OtpController struct{}

func NewOtpController() *OtpController {
	return &OtpController{}
}

func (ctrl *OtpController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/otp/:sessionId")
	{
		group.GET("", ctrl.GetState)
		group.DELETE("", ctrl.Close)
		group.PUT("/digits/:slot", ctrl.EnterDigit)
		group.DELETE("/digits/:slot", ctrl.ClearDigit)
		group.POST("/resend", ctrl.Resend)
	}
}

func (ctrl *OtpController) GetState(c *gin.Context) {
	session, ok := ctrl.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewResponse(session.State(), ""))
}

// EnterDigit godoc
// @Summary      Enter OTP Digit
// @Description  Puts one digit into a slot; filling the last empty slot submits the code
// @Tags         OTP
// @Accept       json
// @Produce      json
// @Param        sessionId  path  string              true  "Session id"
// @Param        slot       path  int                 true  "Slot 0-4"
// @Param        digit      body  model.DigitRequest  true  "Digit"
// @Success      200  {object}  model.Response
// @Router       /otp/{sessionId}/digits/{slot} [put]
func (ctrl *OtpController) EnterDigit(c *gin.Context) {
	session, ok := ctrl.session(c)
	if !ok {
		return
	}

	var req model.DigitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(customerrors.ErrInvalidDigit, session.State()))
		return
	}

	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(customerrors.ErrInvalidSlot, session.State()))
		return
	}

	state, err := session.EnterDigit(slot, req.Digit)
	if err != nil {
		c.JSON(statusFor(err), NewErrorResponse(err, state))
		return
	}
	c.JSON(http.StatusOK, NewResponse(state, ""))
}

func (ctrl *OtpController) ClearDigit(c *gin.Context) {
	session, ok := ctrl.session(c)
	if !ok {
		return
	}

	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(customerrors.ErrInvalidSlot, session.State()))
		return
	}

	state, err := session.ClearDigit(slot)
	if err != nil {
		c.JSON(statusFor(err), NewErrorResponse(err, state))
		return
	}
	c.JSON(http.StatusOK, NewResponse(state, ""))
}

func (ctrl *OtpController) Resend(c *gin.Context) {
	session, ok := ctrl.session(c)
	if !ok {
		return
	}

	if err := session.Resend(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), NewErrorResponse(err, session.State()))
		return
	}

	state := session.State()
	c.JSON(http.StatusOK, NewResponse(state, state.Notice))
}

// Close is the user navigating back: the session is dropped and its timer stopped.
func (ctrl *OtpController) Close(c *gin.Context) {
	if _, ok := ctrl.session(c); !ok {
		return
	}
	localCache.DeleteOtpSession(c.Param("sessionId"))
	c.JSON(http.StatusOK, NewResponse(nil, "OTP session closed"))
}

func (ctrl *OtpController) session(c *gin.Context) (*service.OtpSession, bool) {
	val, found := localCache.GetOtpSession(c.Param("sessionId"))
	if !found {
		c.JSON(http.StatusNotFound, NewErrorResponse(customerrors.ErrSessionNotFound, nil))
		return nil, false
	}

	session, ok := val.(*service.OtpSession)
	if !ok {
		c.JSON(http.StatusNotFound, NewErrorResponse(customerrors.ErrSessionNotFound, nil))
		return nil, false
	}
	return session, true
}
