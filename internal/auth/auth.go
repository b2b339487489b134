// Package auth resolves service credentials and endpoints from external
// configuration: a credentials file and the process environment.
package auth

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// CredentialsFileEnv names the variable pointing at a credentials file.
	CredentialsFileEnv = "IBM_CREDENTIALS_FILE"

	defaultCredentialsFile = "ibm-credentials.env"
)

// Property keys, relative to the service prefix.
const (
	KeyURL         = "URL"
	KeyAuthType    = "AUTH_TYPE"
	KeyAPIKey      = "APIKEY"
	KeyUsername    = "USERNAME"
	KeyPassword    = "PASSWORD"
	KeyBearerToken = "BEARER_TOKEN"
	KeyDisableSSL  = "DISABLE_SSL"
)

// Properties holds the external configuration of one service.
type Properties struct {
	URL         string
	AuthType    string
	APIKey      string
	Username    string
	Password    string
	BearerToken string
	DisableSSL  bool
}

// Empty reports whether no property was found.
func (p *Properties) Empty() bool {
	return p == nil || *p == Properties{}
}

// Prefix returns the variable prefix for serviceName, e.g. "findings_api"
// becomes "FINDINGS_API_".
func Prefix(serviceName string) string {
	return strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_")) + "_"
}

// Load returns the properties of serviceName. Values from the environment
// take precedence over the credentials file.
func Load(serviceName string) (*Properties, error) {
	if serviceName == "" {
		return nil, errors.New("service name is required to load external configuration")
	}
	prefix := Prefix(serviceName)

	v := viper.New()
	v.AutomaticEnv()

	file, err := readCredentialsFile()
	if err != nil {
		return nil, err
	}
	for key, value := range file {
		if strings.HasPrefix(key, prefix) {
			v.SetDefault(key, value)
		}
	}

	return &Properties{
		URL:         v.GetString(prefix + KeyURL),
		AuthType:    strings.ToLower(v.GetString(prefix + KeyAuthType)),
		APIKey:      v.GetString(prefix + KeyAPIKey),
		Username:    v.GetString(prefix + KeyUsername),
		Password:    v.GetString(prefix + KeyPassword),
		BearerToken: v.GetString(prefix + KeyBearerToken),
		DisableSSL:  v.GetBool(prefix + KeyDisableSSL),
	}, nil
}

// readCredentialsFile returns the entries of the first credentials file found,
// or nil when there is none.
func readCredentialsFile() (map[string]string, error) {
	if path := os.Getenv(CredentialsFileEnv); path != "" {
		entries, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read credentials file %s", path)
		}
		return entries, nil
	}

	candidates := []string{defaultCredentialsFile}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, defaultCredentialsFile))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		entries, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read credentials file %s", path)
		}
		return entries, nil
	}

	return nil, nil
}
