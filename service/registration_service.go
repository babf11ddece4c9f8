package service

import (
	"context"
	"fmt"
	"time"

	"rimashaar/config"
	"rimashaar/customerrors"
	"rimashaar/model"
	"rimashaar/validator"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const unexpectedRegistrationStatus = "Registration failed with an unexpected status."

type RegistrationService interface {
	Submit(ctx context.Context, form model.RegistrationForm) (*OtpSession, error)
	BuildRequest(form model.RegistrationForm) (model.RegistrationRequest, error)
}

type RegistrationServiceImpl struct {
	gateway      RegistrationGateway
	cfg          *config.ConfigManager
	tickInterval time.Duration
}

func NewRegistrationService(gateway RegistrationGateway, cfg *config.ConfigManager) RegistrationService {
	return &RegistrationServiceImpl{
		gateway:      gateway,
		cfg:          cfg,
		tickInterval: time.Second,
	}
}

// Submit validates the form, registers it and opens the OTP session that
// follows. Validation failures come back as model.ValidationErrors and
// nothing is sent.
func (s *RegistrationServiceImpl) Submit(ctx context.Context, form model.RegistrationForm) (*OtpSession, error) {
	if errs := validator.ValidateForm(form); errs != nil {
		return nil, errs
	}

	request, err := s.BuildRequest(form)
	if err != nil {
		return nil, err
	}

	response, err := s.gateway.Register(ctx, request)
	if err != nil {
		return nil, err
	}

	if !response.Succeeded() {
		message := response.Message
		if message == "" {
			message = unexpectedRegistrationStatus
		}
		return nil, customerrors.NewApiError(message, response.Status)
	}

	if response.Data == nil {
		return nil, customerrors.ErrMissingUserData
	}

	session := NewOtpSession(s.gateway, request, *response.Data, OtpSessionOptions{
		ResendSeconds: s.cfg.GetConfig().Otp.ResendSeconds,
		TickInterval:  s.tickInterval,
		OnVerified:    handOff,
	})
	session.Start()

	log.Info().Str("contact", request.Contact()).Msg("OTP session opened")
	return session, nil
}

// BuildRequest fills a RegistrationRequest from the form and the configured
// device details. The combined contact field lands in email or phone.
func (s *RegistrationServiceImpl) BuildRequest(form model.RegistrationForm) (model.RegistrationRequest, error) {
	conf := s.cfg.GetConfig()

	var request model.RegistrationRequest
	if err := copier.Copy(&request, &conf.Device); err != nil {
		return model.RegistrationRequest{}, fmt.Errorf("failed to copy device info: %w", err)
	}
	if err := copier.Copy(&request, &form); err != nil {
		return model.RegistrationRequest{}, fmt.Errorf("failed to copy registration form: %w", err)
	}

	if request.PhoneCode == "" {
		request.PhoneCode = conf.DefaultPhoneCode
	}
	if validator.IsValidEmail(form.EmailOrPhone) {
		request.Email = form.EmailOrPhone
	}
	if validator.IsValidPhoneNumber(form.EmailOrPhone) {
		request.Phone = form.EmailOrPhone
	}
	request.NewsletterSubscribed = 0

	return request, nil
}

func handOff(userID int, user model.UserData) {
	log.Info().Int("userId", userID).Str("firstName", user.FirstName).Msg("OTP verified, handing off to welcome")
}
