package secadvisor

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/ibm-cloud-security/go-secadvisor/internal/auth"
)

// Authentication types accepted in external configuration.
const (
	AuthTypeNoAuth      = "noauth"
	AuthTypeBasic       = "basic"
	AuthTypeBearerToken = "bearertoken"
	AuthTypeIAM         = "iam"
)

// Authenticator adds credentials to outgoing requests. The service stores the
// authenticator it is given and calls it once per request.
type Authenticator interface {
	AuthenticationType() string
	Authenticate(req *http.Request) error
	Validate() error
}

// NoAuthAuthenticator leaves requests untouched.
type NoAuthAuthenticator struct{}

func (NoAuthAuthenticator) AuthenticationType() string { return AuthTypeNoAuth }

func (NoAuthAuthenticator) Authenticate(*http.Request) error { return nil }

func (NoAuthAuthenticator) Validate() error { return nil }

// BasicAuthenticator sends HTTP basic credentials.
type BasicAuthenticator struct {
	Username string
	Password string
}

func (a *BasicAuthenticator) AuthenticationType() string { return AuthTypeBasic }

func (a *BasicAuthenticator) Authenticate(req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

func (a *BasicAuthenticator) Validate() error {
	if a.Username == "" || a.Password == "" {
		return errors.New("basic authenticator requires a username and a password")
	}
	return nil
}

// BearerTokenAuthenticator sends a caller-managed bearer token. Obtaining and
// refreshing the token is left to the caller.
type BearerTokenAuthenticator struct {
	BearerToken string
}

func (a *BearerTokenAuthenticator) AuthenticationType() string { return AuthTypeBearerToken }

func (a *BearerTokenAuthenticator) Authenticate(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.BearerToken)
	return nil
}

func (a *BearerTokenAuthenticator) Validate() error {
	if a.BearerToken == "" {
		return errors.New("bearer token authenticator requires a token")
	}
	return nil
}

// authenticatorFromProperties builds the authenticator described by external
// configuration. Without an explicit auth type, a bearer token or a username
// selects the matching authenticator.
func authenticatorFromProperties(props *auth.Properties) (Authenticator, error) {
	authType := props.AuthType
	if authType == "" {
		switch {
		case props.BearerToken != "":
			authType = AuthTypeBearerToken
		case props.Username != "":
			authType = AuthTypeBasic
		case props.APIKey != "":
			authType = AuthTypeIAM
		}
	}

	var a Authenticator
	switch authType {
	case AuthTypeNoAuth:
		a = NoAuthAuthenticator{}
	case AuthTypeBasic:
		a = &BasicAuthenticator{Username: props.Username, Password: props.Password}
	case AuthTypeBearerToken:
		a = &BearerTokenAuthenticator{BearerToken: props.BearerToken}
	case "":
		return nil, ErrNoAuthenticator
	default:
		return nil, errors.Wrapf(ErrUnsupportedAuthType, "%q", authType)
	}

	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid external authentication configuration")
	}
	return a, nil
}
