// Package validator checks auth requests before they leave the client,
// so obvious mistakes fail without a round trip.
package validator

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/util"
)

var usernameMatcher = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,31}$`)

func ValidateLoginRequest(req *model.LoginRequest) error {
	if req == nil {
		return errors.New("request is nil")
	}
	if req.Email == "" {
		return errors.New("email is empty")
	}
	if !util.ValidateEmail(req.Email) {
		return errors.Errorf("invalid email address: %s", req.Email)
	}
	if req.Password == "" {
		return errors.New("password is empty")
	}
	return nil
}

func ValidateRegisterRequest(req *model.RegisterRequest) error {
	if req == nil {
		return errors.New("request is nil")
	}
	if req.Username == "" {
		return errors.New("username is empty")
	}
	if !usernameMatcher.MatchString(req.Username) {
		return errors.New("username is invalid")
	}
	if req.Email == "" {
		return errors.New("email is empty")
	}
	if !util.ValidateEmail(req.Email) {
		return errors.Errorf("invalid email address: %s", req.Email)
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("password is empty")
	}
	if len(password) < 6 {
		return errors.New("password is too short")
	}
	return nil
}
