package domain

// AskSentinel marks a credential secret that must be supplied at start time.
const AskSentinel = "ASK"

const DefaultUsername = "root"

// Names of the secrets a run may be asked for. They double as override keys.
const (
	FieldSSHKeyUnlock = "ssh_key_unlock"
	FieldSSHPassword  = "ssh_password"
	FieldSudoPassword = "sudo_password"

	FieldSSHUsername  = "ssh_username"
	FieldSudoUsername = "sudo_username"
)

// PasswordFields lists the promptable secrets in a fixed order.
var PasswordFields = []string{FieldSSHKeyUnlock, FieldSSHPassword, FieldSudoPassword}

// Credential is the identity and secret material used to reach the hosts.
// Each secret is empty (unused), a literal value, or AskSentinel.
type Credential struct {
	ID           string `json:"id,omitempty" yaml:"id"`
	Name         string `json:"name,omitempty" yaml:"name"`
	SSHUsername  string `json:"sshUsername,omitempty" yaml:"sshUsername"`
	SudoUsername string `json:"sudoUsername,omitempty" yaml:"sudoUsername"`
	SSHKeyData   string `json:"sshKeyData,omitempty" yaml:"sshKeyData"`
	SSHKeyUnlock string `json:"sshKeyUnlock,omitempty" yaml:"sshKeyUnlock"`
	SSHPassword  string `json:"sshPassword,omitempty" yaml:"sshPassword"`
	SudoPassword string `json:"sudoPassword,omitempty" yaml:"sudoPassword"`
}

// Secret returns the stored value of a password field.
func (c *Credential) Secret(field string) string {
	if c == nil {
		return ""
	}
	switch field {
	case FieldSSHKeyUnlock:
		return c.SSHKeyUnlock
	case FieldSSHPassword:
		return c.SSHPassword
	case FieldSudoPassword:
		return c.SudoPassword
	}
	return ""
}

// Redacted returns a copy with every secret replaced by a marker, safe to
// return over the API.
func (c *Credential) Redacted() *Credential {
	if c == nil {
		return nil
	}
	r := *c
	r.SSHKeyData = redact(c.SSHKeyData)
	r.SSHKeyUnlock = redact(c.SSHKeyUnlock)
	r.SSHPassword = redact(c.SSHPassword)
	r.SudoPassword = redact(c.SudoPassword)
	return &r
}

func redact(v string) string {
	if v == "" || v == AskSentinel {
		return v
	}
	return "$encrypted$"
}

// Secrets is the per-run material derived from a credential. It lives only
// for the duration of one run.
type Secrets struct {
	KeyPath   string
	Passwords map[string]string
}

// Password returns the resolved secret for field, or "".
func (s Secrets) Password(field string) string {
	return s.Passwords[field]
}

func (s Secrets) Has(field string) bool {
	_, ok := s.Passwords[field]
	return ok
}
