// Package credentials turns a stored credential into the secret material for
// one run: an optional private key file and the passwords to answer prompts
// with.
package credentials

import (
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/platform"
)

const keyFilePattern = "playrunner-key-*"

// Overrides are values supplied by the caller at start time, keyed by the
// domain.Field* names.
type Overrides map[string]string

// resolve returns the override when one was supplied, else the stored value.
func (o Overrides) resolve(cred *domain.Credential, field string) (string, bool) {
	if v, ok := o[field]; ok {
		return v, true
	}
	return cred.Secret(field), false
}

// PasswordsNeeded returns the password fields still set to ASK with no
// override, in domain.PasswordFields order. It has no side effects.
func PasswordsNeeded(cred *domain.Credential, overrides Overrides) []string {
	if cred == nil {
		return nil
	}
	var needed []string
	for _, field := range domain.PasswordFields {
		if _, supplied := overrides[field]; supplied {
			continue
		}
		if cred.Secret(field) == domain.AskSentinel {
			needed = append(needed, field)
		}
	}
	return needed
}

// Passwords resolves the secret map for a run. Empty and ASK values are left out.
func Passwords(cred *domain.Credential, overrides Overrides) map[string]string {
	passwords := make(map[string]string)
	for _, field := range domain.PasswordFields {
		v, _ := overrides.resolve(cred, field)
		if v == "" || v == domain.AskSentinel {
			continue
		}
		passwords[field] = v
	}
	return passwords
}

// Materializer writes key material to disk for the lifetime of a run.
type Materializer struct {
	os     platform.OSOperations
	keyDir string
	logger *logger.Logger
}

func NewMaterializer(osOps platform.OSOperations, keyDir string) *Materializer {
	return &Materializer{
		os:     osOps,
		keyDir: keyDir,
		logger: logger.WithField("component", "credentials"),
	}
}

// Materialize builds the run's Secrets. When the credential carries key data
// it is written verbatim to a fresh 0600 file; the caller owns that file and
// must call Release on every exit path.
func (m *Materializer) Materialize(cred *domain.Credential, overrides Overrides) (*Secrets, error) {
	s := &Secrets{
		Secrets: domain.Secrets{Passwords: Passwords(cred, overrides)},
		os:      m.os,
		logger:  m.logger,
	}

	if cred == nil || cred.SSHKeyData == "" {
		return s, nil
	}

	path, err := m.os.WriteTempFile(m.keyDir, keyFilePattern, []byte(cred.SSHKeyData), 0o600)
	if err != nil {
		return nil, errors.NewFilesystemError(m.keyDir, "write-key", err)
	}
	s.KeyPath = path

	m.logger.Debug("private key materialized", "credentialId", cred.ID, "passwords", len(s.Passwords))
	return s, nil
}

// Secrets is domain.Secrets plus ownership of the key file.
type Secrets struct {
	domain.Secrets

	os       platform.OSOperations
	logger   *logger.Logger
	released bool
}

// Release removes the key file. It is safe to call more than once and never
// fails: a removal error is logged and dropped.
func (s *Secrets) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.KeyPath == "" {
		return
	}
	if err := s.os.Remove(s.KeyPath); err != nil && !s.os.IsNotExist(err) {
		s.logger.Warn("failed to remove private key file", "path", s.KeyPath, "error", err)
	}
}
