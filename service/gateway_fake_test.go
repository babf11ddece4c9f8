package service

import (
	"context"
	"sync"

	"rimashaar/model"
)

type verifyCall struct {
	otp    string
	userID int
}

// fakeGateway records calls. When release is set, VerifyOtp blocks until it
// is closed or the context ends.
type fakeGateway struct {
	mu            sync.Mutex
	registerCalls []model.RegistrationRequest
	verifyCalls   []verifyCall

	registerResp *model.RegistrationResponse
	registerErr  error
	verifyOK     bool
	verifyErr    error
	release      chan struct{}
}

func (f *fakeGateway) Register(ctx context.Context, request model.RegistrationRequest) (*model.RegistrationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls = append(f.registerCalls, request)
	return f.registerResp, f.registerErr
}

func (f *fakeGateway) VerifyOtp(ctx context.Context, otp string, userID int) (bool, error) {
	f.mu.Lock()
	f.verifyCalls = append(f.verifyCalls, verifyCall{otp: otp, userID: userID})
	release := f.release
	ok, err := f.verifyOK, f.verifyErr
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return ok, err
}

func (f *fakeGateway) verifies() []verifyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]verifyCall(nil), f.verifyCalls...)
}

func (f *fakeGateway) registers() []model.RegistrationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.RegistrationRequest(nil), f.registerCalls...)
}

func intPtr(v int) *int {
	return &v
}
