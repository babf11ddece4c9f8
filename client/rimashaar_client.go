package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"rimashaar/customerrors"
	"rimashaar/middleware"
	"rimashaar/model"
	"rimashaar/util"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	registerPath   = "register-new"
	verifyCodePath = "verify-code"

	defaultRegisterFailure = "Registration failed."
	defaultVerifyFailure   = "OTP verification failed."
)

// RimashaarClient talks to the registration backend. It keeps no state
// between calls and never retries.
type RimashaarClient struct {
	RestyClient *resty.Client
	baseURL     string
	language    string
}

func NewRimashaarClient(cfg model.ApiConfig) *RimashaarClient {
	c := resty.New().
		SetTimeout(cfg.Timeout).
		SetLogger(util.NewRestyLogger(log.Logger)).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		}).
		OnAfterResponse(middleware.DecompressMiddleware)

	return &RimashaarClient{
		RestyClient: c,
		baseURL:     cfg.BaseURL,
		language:    cfg.Language,
	}
}

// Register posts the request to register-new. A body with success=false
// becomes an ApiError carrying the server's message and status.
func (c *RimashaarClient) Register(ctx context.Context, request model.RegistrationRequest) (*model.RegistrationResponse, error) {
	var response model.RegistrationResponse
	if err := c.post(ctx, registerPath, request, &response); err != nil {
		log.Error().Err(err).Msg("Error in registerUser")
		return nil, err
	}

	if !response.Success {
		message := response.Message
		if message == "" {
			message = defaultRegisterFailure
		}
		log.Warn().Int("status", response.Status).Str("message", message).Msg("Registration Failed")
		return nil, customerrors.NewApiError(message, response.Status)
	}

	log.Info().Int("status", response.Status).Str("message", response.Message).Msg("Registration Successful")
	return &response, nil
}

// VerifyOtp posts {user_id, otp} to verify-code. It returns true only for
// success=true with status 200; every other outcome is an error.
func (c *RimashaarClient) VerifyOtp(ctx context.Context, otp string, userID int) (bool, error) {
	var response model.VerifyOtpResponse
	body := model.VerifyOtpRequest{UserID: userID, Otp: otp}
	if err := c.post(ctx, verifyCodePath, body, &response); err != nil {
		log.Error().Err(err).Msg("Error in verifyOtp")
		return false, err
	}

	if response.Succeeded() {
		log.Info().Int("userId", userID).Msg("OTP Verification Successful")
		return true, nil
	}

	message := response.Message
	if message == "" {
		message = defaultVerifyFailure
	}
	log.Warn().Int("status", response.Status).Str("message", message).Msg("OTP Verification Failed")
	return false, customerrors.NewApiError(message, response.Status)
}

func (c *RimashaarClient) post(ctx context.Context, path string, body, result any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return customerrors.NewUnderlyingError(err)
	}
	log.Debug().Str("method", resty.MethodPost).Str("url", endpoint).RawJSON("body", payload).Msg("API Request")

	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetQueryParam("lang", c.language).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		log.Error().Err(err).Str("url", endpoint).Msg("API Request Failed")
		return customerrors.NewUnderlyingError(err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Str("url", endpoint).
		Bytes("body", resp.Body()).
		Msg("API Response")

	if !resp.IsSuccess() {
		log.Error().Int("status", resp.StatusCode()).Str("url", endpoint).Msg("API Error: unexpected HTTP status")
		return customerrors.ErrInvalidResponse
	}

	if len(bytes.TrimSpace(resp.Body())) == 0 {
		log.Error().Str("url", endpoint).Msg("API Error: no data received")
		return customerrors.ErrNoData
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		log.Error().Err(err).Str("url", endpoint).Msg("API Decoding Error")
		return customerrors.NewDecodingError(err)
	}
	return nil
}

func (c *RimashaarClient) endpoint(path string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		log.Error().Str("baseUrl", c.baseURL).Str("endpoint", path).Msg("API Request Error: invalid URL")
		return "", customerrors.ErrInvalidURL
	}
	return base.JoinPath(path).String(), nil
}
