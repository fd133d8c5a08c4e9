package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/service/account"
	"github.com/edunexus/auth-client/internal/service/register"
	"github.com/edunexus/auth-client/internal/utils"
)

// backKeyword is what the user types to return to the previous step.
const backKeyword = "back"

// fieldPrompt describes one interactive form field.
type fieldPrompt struct {
	name     string
	label    string
	secret   bool
	boolean  bool
	current  func(form register.Form) string
	optional bool
}

// stepPrompts lists the fields asked on each registration step.
//
//nolint:gochecknoglobals // Static form layout shared by every wizard run.
var stepPrompts = map[register.Step][]fieldPrompt{
	register.StepIdentity: {
		{
			name:    "idNumber",
			label:   "ID number",
			current: func(f register.Form) string { return f.IDNumber },
		},
		{
			name:    "name",
			label:   "First name",
			current: func(f register.Form) string { return f.Name },
		},
		{
			name:    "lastName",
			label:   "Last name",
			current: func(f register.Form) string { return f.LastName },
		},
		{
			name:     "dateOfBirth",
			label:    "Date of birth (YYYY-MM-DD, optional)",
			current:  func(f register.Form) string { return f.DateOfBirth },
			optional: true,
		},
	},
	register.StepContact: {
		{
			name:    "email",
			label:   "Email",
			current: func(f register.Form) string { return f.Email },
		},
		{
			name:     "phoneNumber",
			label:    "Phone number (optional)",
			current:  func(f register.Form) string { return f.PhoneNumber },
			optional: true,
		},
	},
	register.StepCredentials: {
		{
			name:   "password",
			label:  "Password",
			secret: true,
		},
		{
			name:   "confirmPassword",
			label:  "Confirm password",
			secret: true,
		},
		{
			name:    "termsAccepted",
			label:   "Accept the terms and conditions",
			boolean: true,
		},
	},
}

// ExecuteRegisterCommand executes the interactive registration wizard.
// Progress is persisted after every answer, so an interrupted run resumes at
// the same step with everything but the passwords filled in.
func ExecuteRegisterCommand(ctx context.Context, cfg *config.Config) {
	c := mustComponents(ctx, cfg)

	scheduler := utils.NewScheduler()
	defer scheduler.Close()

	controller := register.NewController(ctx, c.store, c.api, scheduler, cfg.ParsedRedirectDelay)

	redirected := make(chan string, 1)
	controller.OnNavigate(func(path string) {
		redirected <- path
	})

	if controller.CurrentStep() != register.StepIdentity || controller.Snapshot() != (register.Form{}) {
		logger.Infof(ctx, "Resuming your registration at the %s step. Type '%s' to go to a previous step.",
			controller.CurrentStep(), backKeyword)
	} else {
		logger.Infof(ctx, "Starting registration. Type '%s' at any prompt to go to a previous step.", backKeyword)
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		step := controller.CurrentStep()
		fmt.Printf("\n--- Step %d of %d: %s ---\n", int(step), int(register.StepCredentials), step)

		wentBack, err := askStepFields(ctx, reader, controller, step)
		if err != nil {
			logger.Fatalf(ctx, "Registration aborted: %v", err)
		}

		if wentBack {
			continue
		}

		if step != register.StepCredentials {
			if err = controller.Advance(ctx); err != nil {
				printFieldErrors(err)

				continue
			}

			continue
		}

		if submitRegistration(ctx, c, controller, redirected) {
			return
		}
	}
}

// askStepFields prompts for each field of the step. Returns true when the
// user asked to go back a step.
func askStepFields(
	ctx context.Context,
	reader *bufio.Reader,
	controller *register.Controller,
	step register.Step,
) (bool, error) {
	for _, field := range stepPrompts[step] {
		answer, err := askField(reader, controller.Snapshot(), field)
		if err != nil {
			return false, err
		}

		if answer == backKeyword {
			if err = controller.Retreat(ctx); err != nil {
				return false, err
			}

			return true, nil
		}

		if err = controller.SetField(ctx, field.name, answer); err != nil {
			return false, err
		}
	}

	return false, nil
}

func askField(reader *bufio.Reader, form register.Form, field fieldPrompt) (string, error) {
	if field.secret {
		return promptPassword(reader, field.label)
	}

	if field.boolean {
		accepted, err := promptBool(reader, field.label, form.TermsAccepted)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(accepted), nil
	}

	current := ""
	if field.current != nil {
		current = field.current(form)
	}

	return promptLine(reader, field.label, current)
}

// submitRegistration sends the form. Returns true when the wizard is done.
func submitRegistration(
	ctx context.Context,
	c *components,
	controller *register.Controller,
	redirected <-chan string,
) bool {
	response, err := controller.Submit(ctx)
	if err != nil {
		if fields := register.FieldErrors(err); fields != nil {
			printFieldErrors(err)

			return false
		}

		// A duplicate email or ID number already moved the form back to the
		// step owning the field; the loop re-prompts there.
		logger.Error(ctx, account.FriendlyMessage(err))

		return false
	}

	if response.Message != "" {
		logger.Info(ctx, response.Message)
	} else {
		logger.Info(ctx, "Registration successful. Please check your email for the activation code.")
	}

	// The login redirect fires after the configured delay, mirroring how the
	// web front-end lets the success message sink in first.
	select {
	case path := <-redirected:
		logger.Infof(ctx, "You can now sign in at %s%s or with 'auth-client login'.", c.cfg.WebBaseURL, path)
	case <-time.After(c.cfg.ParsedRedirectDelay + time.Second):
		logger.Warn(ctx, "Redirect timer never fired; you can sign in with 'auth-client login'.")
	}

	return true
}

func printFieldErrors(err error) {
	fields := register.FieldErrors(err)
	if fields == nil {
		fmt.Printf("  %v\n", err)

		return
	}

	fmt.Println("Please fix the following:")

	for field, message := range fields {
		fmt.Printf("  - %s: %s\n", field, message)
	}
}
