package client

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignUpForm holds the signup fields as the user typed them.
type SignUpForm struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}

// ValidationError maps field names to their error messages. It is returned
// before any network call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d field(s) failed validation", len(e.Fields))
}

// Validate applies the signup form rules and returns per-field messages,
// or nil when everything passes.
func (f SignUpForm) Validate() *ValidationError {
	errs := make(map[string]string)

	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailShape.MatchString(f.Email) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if !f.AgreeToTerms {
		errs["agreeToTerms"] = "You must agree to the terms and conditions"
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}

// User is the account object returned alongside tokens.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges credentials for a token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users", body, &resp); err != nil {
		return User{}, err
	}
	if err := c.tokens.SetToken(resp.Token); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// SignUp validates the form locally, then registers the account and stores
// the returned token. A *ValidationError means no request was sent.
func (c *Client) SignUp(ctx context.Context, form SignUpForm) (User, error) {
	if verr := form.Validate(); verr != nil {
		return User{}, verr
	}

	body := map[string]string{
		"name":     form.FirstName + " " + form.LastName,
		"email":    form.Email,
		"password": form.Password,
		"imageUrl": "",
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/signUp", body, &resp); err != nil {
		return User{}, err
	}
	if err := c.tokens.SetToken(resp.Token); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Logout clears the stored token.
func (c *Client) Logout() error {
	return c.tokens.ClearToken()
}
