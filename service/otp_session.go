package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"rimashaar/customerrors"
	"rimashaar/model"

	"github.com/rs/zerolog/log"
)

const (
	defaultResendSeconds = 30
	resendSuccessNotice  = "OTP resent successfully."
	noFocus              = -1
)

var errInvalidOtp = errors.New("Invalid OTP")

// RegistrationGateway is the backend the registration flow talks to.
type RegistrationGateway interface {
	Register(ctx context.Context, request model.RegistrationRequest) (*model.RegistrationResponse, error)
	VerifyOtp(ctx context.Context, otp string, userID int) (bool, error)
}

type OtpSessionOptions struct {
	ResendSeconds int
	// TickInterval is the countdown period; zero means the caller drives Tick.
	TickInterval time.Duration
	// OnVerified is the hand-off to whatever comes after verification.
	OnVerified func(userID int, user model.UserData)
}

// OtpSession owns the five digit slots of one verification attempt and the
// resend countdown. All methods are safe for concurrent use.
//
// Filling the last empty slot submits the code in the background; the
// session is busy until the result lands and rejects input meanwhile.
// Results arriving after Close are dropped.
type OtpSession struct {
	mu         sync.Mutex
	gateway    RegistrationGateway
	request    model.RegistrationRequest
	user       model.UserData
	digits     [model.OtpLength]string
	focused    int
	phase      model.OtpPhase
	resending  bool
	lastError  string
	notice     string
	generation uint64
	timer      *ResendTimer
	onVerified func(int, model.UserData)

	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
}

func NewOtpSession(gateway RegistrationGateway, request model.RegistrationRequest, user model.UserData, opts OtpSessionOptions) *OtpSession {
	seconds := opts.ResendSeconds
	if seconds <= 0 {
		seconds = defaultResendSeconds
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &OtpSession{
		gateway:    gateway,
		request:    request,
		user:       user,
		focused:    0,
		phase:      model.PhaseEntering,
		timer:      NewResendTimer(seconds, opts.TickInterval),
		onVerified: opts.OnVerified,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start begins the resend countdown.
func (s *OtpSession) Start() {
	s.timer.Start()
}

func (s *OtpSession) Request() model.RegistrationRequest {
	return s.request
}

func (s *OtpSession) User() model.UserData {
	return s.user
}

func (s *OtpSession) State() model.OtpState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// EnterDigit puts a single numeral into slot and moves focus to the next
// slot, or yields focus after the last one. An empty digit acts as backspace.
func (s *OtpSession) EnterDigit(slot int, digit string) (model.OtpState, error) {
	if digit == "" {
		return s.ClearDigit(slot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInputLocked(slot); err != nil {
		return s.stateLocked(), err
	}
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return s.stateLocked(), customerrors.ErrInvalidDigit
	}

	s.digits[slot] = digit
	s.lastError = ""
	s.notice = ""
	if slot < model.OtpLength-1 {
		s.focused = slot + 1
	} else {
		s.focused = noFocus
	}

	if s.completeLocked() {
		s.submitLocked()
	}
	return s.stateLocked(), nil
}

// ClearDigit empties slot and moves focus back one slot. It never submits.
func (s *OtpSession) ClearDigit(slot int) (model.OtpState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInputLocked(slot); err != nil {
		return s.stateLocked(), err
	}

	s.digits[slot] = ""
	if slot > 0 {
		s.focused = slot - 1
	} else {
		s.focused = 0
	}
	return s.stateLocked(), nil
}

// Resend registers the same request again so the backend sends a new code.
// It is only allowed once the countdown has reached zero, and restarts the
// countdown whatever the outcome.
func (s *OtpSession) Resend(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.phase == model.PhaseClosed || s.phase == model.PhaseVerified:
		s.mu.Unlock()
		return customerrors.ErrSessionClosed
	case s.busyLocked():
		s.mu.Unlock()
		return customerrors.ErrSessionBusy
	case !s.timer.Ready():
		s.mu.Unlock()
		return customerrors.ErrResendNotReady
	}

	s.resending = true
	s.lastError = ""
	s.notice = ""
	request := s.request
	s.inflight.Add(1)
	s.mu.Unlock()
	defer s.inflight.Done()

	response, err := s.gateway.Register(ctx, request)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == model.PhaseClosed {
		log.Debug().Str("contact", request.Contact()).Msg("resend finished after session closed")
		return customerrors.ErrSessionClosed
	}

	s.resending = false
	s.timer.Start()

	if err != nil {
		s.lastError = customerrors.UserMessage(err)
		log.Warn().Err(err).Str("contact", request.Contact()).Msg("OTP resend failed")
		return err
	}

	s.notice = response.Message
	if s.notice == "" {
		s.notice = resendSuccessNotice
	}
	log.Info().Str("contact", request.Contact()).Msg("OTP resent")
	return nil
}

// Tick advances the resend countdown by one second.
func (s *OtpSession) Tick() model.OtpState {
	s.timer.Tick()
	return s.State()
}

// Close tears the session down: the countdown stops, in-flight calls are
// cancelled and their results ignored.
func (s *OtpSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == model.PhaseClosed {
		return nil
	}
	s.phase = model.PhaseClosed
	s.resending = false
	s.timer.Stop()
	s.cancel()
	return nil
}

// Wait blocks until no verify or resend call is in flight.
func (s *OtpSession) Wait() {
	s.inflight.Wait()
}

func (s *OtpSession) checkInputLocked(slot int) error {
	switch {
	case s.phase == model.PhaseClosed || s.phase == model.PhaseVerified:
		return customerrors.ErrSessionClosed
	case s.busyLocked():
		return customerrors.ErrSessionBusy
	case slot < 0 || slot >= model.OtpLength:
		return customerrors.ErrInvalidSlot
	}
	return nil
}

func (s *OtpSession) busyLocked() bool {
	return s.phase == model.PhaseSubmitting || s.resending
}

func (s *OtpSession) completeLocked() bool {
	for _, d := range s.digits {
		if d == "" {
			return false
		}
	}
	return true
}

func (s *OtpSession) submitLocked() {
	userID, ok := s.user.UserID()
	if !ok {
		s.lastError = customerrors.ErrMissingUserID.Error()
		log.Warn().Str("contact", s.request.Contact()).Msg("OTP submit skipped: no user id")
		return
	}

	s.phase = model.PhaseSubmitting
	s.generation++
	generation := s.generation
	otp := s.stateLocked().Code()

	s.inflight.Add(1)
	go s.verify(generation, otp, userID)
}

func (s *OtpSession) verify(generation uint64, otp string, userID int) {
	defer s.inflight.Done()

	ok, err := s.gateway.VerifyOtp(s.ctx, otp, userID)

	s.mu.Lock()
	if s.phase == model.PhaseClosed || generation != s.generation {
		s.mu.Unlock()
		log.Debug().Int("userId", userID).Msg("dropping stale OTP verification result")
		return
	}

	if err == nil && ok {
		s.phase = model.PhaseVerified
		s.lastError = ""
		s.timer.Stop()
		onVerified, user := s.onVerified, s.user
		s.mu.Unlock()

		if onVerified != nil {
			onVerified(userID, user)
		}
		return
	}
	defer s.mu.Unlock()

	if err == nil {
		err = errInvalidOtp
	}
	s.phase = model.PhaseEntering
	s.lastError = customerrors.UserMessage(err)
}

func (s *OtpSession) stateLocked() model.OtpState {
	remaining := s.timer.Remaining()
	state := model.OtpState{
		Digits:             s.digits,
		FocusedSlot:        s.focused,
		SecondsUntilResend: remaining,
		ReadyToResend:      remaining == 0,
		ResendLabel:        model.ResendLabel(remaining),
		Phase:              s.phase,
		IsSubmitting:       s.busyLocked(),
		LastError:          s.lastError,
		Notice:             s.notice,
	}
	if id, ok := s.user.UserID(); ok {
		state.UserID = &id
	}
	return state
}
