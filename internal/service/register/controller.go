package register

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/edunexus/auth-client/internal/client/authapi"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/storage"
	"github.com/edunexus/auth-client/internal/utils"
)

// Step identifies one page of the registration form.
type Step int

// The three form steps, in order.
const (
	StepIdentity Step = iota + 1
	StepContact
	StepCredentials

	firstStep = StepIdentity
	finalStep = StepCredentials
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepContact:
		return "contact"
	case StepCredentials:
		return "credentials"
	default:
		return "unknown"
	}
}

// Storage keys for the persisted draft and step position.
const (
	draftKey = "register-form-data"
	stepKey  = "register-current-step"
)

// LoginPath is where a completed registration navigates to.
const LoginPath = "/login"

// Static error definitions for better error handling.
var (
	// ErrUnknownStep indicates a step outside the defined range.
	ErrUnknownStep = errors.New("unknown registration step")
	// ErrUnknownField indicates a field name the form does not have.
	ErrUnknownField = errors.New("unknown form field")
	// ErrNotOnFinalStep indicates a submit attempt before the last step.
	ErrNotOnFinalStep = errors.New("registration is not on its final step")
	// ErrAlreadyOnFinalStep indicates an advance attempt past the last step.
	ErrAlreadyOnFinalStep = errors.New("registration is already on its final step")
)

// Form holds every field across the three steps. Password fields live only
// in memory; the persisted draft never includes them.
type Form struct {
	// Step 1.
	IDNumber    string `json:"idNumber"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	// Step 2.
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	// Step 3.
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	TermsAccepted   bool   `json:"termsAccepted"`
}

// Registrar is the slice of the API client the controller needs.
type Registrar interface {
	Register(ctx context.Context, request *authapi.RegisterRequest) (*authapi.AuthResponse, error)
}

// Controller drives the multi-step registration form. Field edits and step
// changes are persisted as they happen, so an interrupted run resumes where
// it left off with only the password fields to re-enter.
type Controller struct {
	mu            sync.Mutex
	store         storage.Store
	api           Registrar
	scheduler     *utils.Scheduler
	redirectDelay time.Duration
	onNavigate    func(path string)

	form     Form
	step     Step
	redirect *utils.ScheduledTask
}

// NewController creates a form controller and rehydrates any persisted draft.
// A malformed draft or step marker is logged and discarded rather than
// blocking a fresh start.
func NewController(
	ctx context.Context,
	store storage.Store,
	api Registrar,
	scheduler *utils.Scheduler,
	redirectDelay time.Duration,
) *Controller {
	controller := &Controller{
		store:         store,
		api:           api,
		scheduler:     scheduler,
		redirectDelay: redirectDelay,
		step:          firstStep,
	}

	controller.rehydrate(ctx)

	return controller
}

// OnNavigate registers the navigation hook used after a successful
// registration. The path is relative to the web application root.
func (c *Controller) OnNavigate(hook func(path string)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onNavigate = hook
}

// CurrentStep returns the step the form is on.
func (c *Controller) CurrentStep() Step {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.step
}

// Snapshot returns a copy of the current form values.
func (c *Controller) Snapshot() Form {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form
}

// SetField updates a single form field by its wire name and persists the
// draft. Password fields update in memory only.
func (c *Controller) SetField(ctx context.Context, name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "idNumber":
		c.form.IDNumber = value
	case "name":
		c.form.Name = value
	case "lastName":
		c.form.LastName = value
	case "dateOfBirth":
		c.form.DateOfBirth = value
	case "email":
		c.form.Email = value
	case "phoneNumber":
		c.form.PhoneNumber = value
	case "password":
		c.form.Password = value

		return nil
	case "confirmPassword":
		c.form.ConfirmPassword = value

		return nil
	case "termsAccepted":
		accepted, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: termsAccepted must be a boolean, got %q", ErrUnknownField, value)
		}

		c.form.TermsAccepted = accepted
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return c.persistDraftLocked(ctx)
}

// ValidateCurrentStep checks the fields owned by the current step.
// Per-field messages are available through FieldErrors.
func (c *Controller) ValidateCurrentStep() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form.validateStep(c.step)
}

// Advance validates the current step and, if it passes, moves to the next
// one. Field values are kept either way.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step >= finalStep {
		return ErrAlreadyOnFinalStep
	}

	if err := c.form.validateStep(c.step); err != nil {
		return err
	}

	c.step++

	return c.persistStepLocked(ctx)
}

// Retreat moves back one step without validating. All entered values are
// retained. Retreating from the first step is a no-op.
func (c *Controller) Retreat(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step <= firstStep {
		return nil
	}

	c.step--

	return c.persistStepLocked(ctx)
}

// Submit validates the whole form and sends it to the registration endpoint.
// Only legal from the final step. A duplicate-field rejection moves the form
// back to the step that owns the conflicting field so the user can fix it.
// On success the draft is wiped, the form resets, and navigation to the
// login page is scheduled after the configured delay.
func (c *Controller) Submit(ctx context.Context) (*authapi.AuthResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != finalStep {
		return nil, fmt.Errorf("%w: on step %d", ErrNotOnFinalStep, c.step)
	}

	if err := c.form.validateAll(); err != nil {
		return nil, err
	}

	response, err := c.api.Register(ctx, &authapi.RegisterRequest{
		IDNumber:      c.form.IDNumber,
		Name:          c.form.Name,
		LastName:      c.form.LastName,
		Email:         c.form.Email,
		PhoneNumber:   c.form.PhoneNumber,
		Password:      c.form.Password,
		DateOfBirth:   c.form.DateOfBirth,
		TermsAccepted: c.form.TermsAccepted,
	})
	if err != nil {
		c.routeConflictLocked(ctx, err)

		return nil, err
	}

	logger.Infof(ctx, "Registration accepted for %q", c.form.Email)

	c.resetLocked(ctx)
	c.scheduleRedirectLocked(ctx)

	return response, nil
}

// Reset wipes the draft, cancels any pending redirect, and returns the form
// to its first step.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked(ctx)
}

// routeConflictLocked inspects a server rejection and moves the form back to
// the step owning the duplicate field: email conflicts belong to the contact
// step, ID number conflicts to the identity step.
func (c *Controller) routeConflictLocked(ctx context.Context, err error) {
	if !errors.Is(err, authapi.ErrValidation) {
		return
	}

	apiError, ok := authapi.AsError(err)
	if !ok {
		return
	}

	message := strings.ToLower(apiError.Message)

	switch {
	case strings.Contains(message, "email already"):
		c.step = StepContact
	case strings.Contains(message, "id number already"):
		c.step = StepIdentity
	default:
		return
	}

	logger.Debugf(ctx, "Registration conflict, returning to %s step: %s", c.step, apiError.Message)

	if persistErr := c.persistStepLocked(ctx); persistErr != nil {
		logger.Warnf(ctx, "Failed to persist conflict step: %v", persistErr)
	}
}

func (c *Controller) scheduleRedirectLocked(ctx context.Context) {
	if c.onNavigate == nil || c.scheduler == nil {
		return
	}

	navigate := c.onNavigate
	c.redirect = c.scheduler.Schedule(c.redirectDelay, func() {
		navigate(LoginPath)
	})

	logger.Debugf(ctx, "Redirect to %s scheduled in %s", LoginPath, c.redirectDelay)
}

func (c *Controller) resetLocked(ctx context.Context) {
	if c.redirect != nil {
		c.redirect.Cancel()
		c.redirect = nil
	}

	if err := c.store.Delete(draftKey); err != nil {
		logger.Warnf(ctx, "Failed to delete form draft: %v", err)
	}

	if err := c.store.Delete(stepKey); err != nil {
		logger.Warnf(ctx, "Failed to delete step marker: %v", err)
	}

	c.form = Form{}
	c.step = firstStep
}

func (c *Controller) persistDraftLocked(ctx context.Context) error {
	encoded, err := encodeDraft(&c.form)
	if err != nil {
		return err
	}

	if err = c.store.Set(draftKey, encoded); err != nil {
		return fmt.Errorf("failed to persist form draft: %w", err)
	}

	logger.Debugf(ctx, "Form draft persisted")

	return nil
}

func (c *Controller) persistStepLocked(ctx context.Context) error {
	if err := c.store.Set(stepKey, strconv.Itoa(int(c.step))); err != nil {
		return fmt.Errorf("failed to persist step marker: %w", err)
	}

	logger.Debugf(ctx, "Step marker persisted: %s", c.step)

	return nil
}

// rehydrate restores the draft and step position left by a previous run.
func (c *Controller) rehydrate(ctx context.Context) {
	if raw, ok := c.store.Get(draftKey); ok {
		persisted, err := decodeDraft(raw)
		if err != nil {
			logger.Warnf(ctx, "Discarding malformed form draft: %v", err)
		} else {
			persisted.apply(&c.form)
		}
	}

	raw, ok := c.store.Get(stepKey)
	if !ok {
		return
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || Step(parsed) < firstStep || Step(parsed) > finalStep {
		logger.Warnf(ctx, "Discarding malformed step marker %q", raw)

		return
	}

	c.step = Step(parsed)
}
