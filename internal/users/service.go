// Package users is a small in-memory user service whose operations report
// their results as outcomes.
package users

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/Kotrecon/result-pattern/fault"
	"github.com/Kotrecon/result-pattern/internal/logger"
	"github.com/Kotrecon/result-pattern/outcome"
	"github.com/Kotrecon/result-pattern/validated"
)

const (
	entityName = "User"

	invalidUserMessage = "User input is invalid"
	emailRequired      = "Email field is required"
	emailMalformed     = "Email must be a valid address"
	nameRequired       = "Name field is required"
)

type Service struct {
	store *Store
	log   zerolog.Logger
}

func NewService(store *Store, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("component", "users").Logger(),
	}
}

// Create validates in and stores a new active user. Every violated rule is
// reported as a detail of a single validation error; an email that is
// already registered yields a conflict.
func (s *Service) Create(in NewUser) outcome.Of[User] {
	res := outcome.Bind(validateNewUser(in), s.insert)
	s.report(res.Errors(), "create user")
	return res
}

// Get looks a user up by id.
func (s *Service) Get(id int) outcome.Of[User] {
	u, found := s.store.Find(id)
	if !found {
		return outcome.FailureOf[User](fault.NewNotFound(entityName, id))
	}
	return outcome.SuccessOf(u)
}

// Count returns the number of registered users.
func (s *Service) Count() int {
	return s.store.Count()
}

// RequireActive passes u through when it is active.
func (s *Service) RequireActive(u User) outcome.Of[User] {
	if !u.Active {
		return outcome.FailureOf[User](fault.NewForbidden())
	}
	return outcome.SuccessOf(u)
}

// GetActive fetches a user and requires it to be active.
func (s *Service) GetActive(id int) outcome.Of[User] {
	res := outcome.Bind(s.Get(id), s.RequireActive)
	s.report(res.Errors(), "get active user")
	return res
}

// Deactivate marks a user inactive. Deactivating an inactive user breaks a
// business rule.
func (s *Service) Deactivate(id int) outcome.Outcome {
	res := outcome.Bind(s.Get(id), s.deactivate).ToOutcome()
	res.OnSuccess(func() {
		s.log.Info().Int("user_id", id).Msg("user deactivated")
	})
	res.OnFailure(func(errs []outcome.Error) {
		logger.Failures(s.log.Debug(), errs).Int("user_id", id).Msg("deactivate user")
	})
	return res
}

func (s *Service) deactivate(u User) outcome.Of[User] {
	if !u.Active {
		return outcome.FailureOf[User](fault.NewBusinessRule("User is already inactive"))
	}
	u.Active = false
	if err := s.store.Update(u); err != nil {
		return outcome.FailureOf[User](fault.NewNotFound(entityName, u.ID))
	}
	return outcome.SuccessOf(u)
}

func (s *Service) insert(in NewUser) outcome.Of[User] {
	u, err := s.store.Insert(in)
	if err != nil {
		return outcome.FailureOf[User](fault.NewConflict("A user with this email already exists"))
	}
	s.log.Info().Int("user_id", u.ID).Str("email", u.Email).Msg("user created")
	return outcome.SuccessOf(u)
}

func (s *Service) report(errs []outcome.Error, op string) {
	if len(errs) == 0 {
		return
	}
	logger.Failures(s.log.Debug(), errs).Msg(op)
}

func validateNewUser(in NewUser) outcome.Of[NewUser] {
	email := strings.TrimSpace(in.Email)
	return validated.Of(in).
		Require(email != "", emailRequired).
		Require(email == "" || strings.Contains(email, "@"), emailMalformed).
		Ensure(func(u NewUser) bool { return strings.TrimSpace(u.Name) != "" }, nameRequired).
		Outcome(invalidUserMessage)
}
