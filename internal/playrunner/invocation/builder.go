// Package invocation assembles the argument vector and environment of an
// ansible-playbook run.
package invocation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

// Environment variables forming the contract with the inventory and callback
// plugins.
const (
	EnvJobID               = "ACOM_JOB_ID"
	EnvInventoryID         = "ACOM_INVENTORY_ID"
	EnvCallbackPlugins     = "ANSIBLE_CALLBACK_PLUGINS"
	EnvCallbackEventScript = "ACOM_CALLBACK_EVENT_SCRIPT"
	EnvTransport           = "ANSIBLE_TRANSPORT"
	EnvNoColor             = "ANSIBLE_NOCOLOR"
)

const maxVerbosity = 3

// Settings are the host-level inputs of every invocation.
type Settings struct {
	Program             string
	InventoryScript     string
	CallbackPluginDir   string
	CallbackEventScript string
	Transport           string
	AgentProgram        string
	AddKeyProgram       string
	Shell               string
}

// Options are per-start values that override the credential.
type Options struct {
	SSHUsername  string
	SudoUsername string
}

// Invocation is a fully resolved process launch.
type Invocation struct {
	Argv []string
	Dir  string
	Env  map[string]string
}

// Environ renders Env as sorted KEY=value pairs.
func (inv Invocation) Environ() []string {
	keys := make([]string, 0, len(inv.Env))
	for k := range inv.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+inv.Env[k])
	}
	return env
}

// Wrapped reports whether the command runs under an ssh-agent.
func (inv Invocation) Wrapped(s Settings) bool {
	return len(inv.Argv) > 0 && inv.Argv[0] == s.AgentProgram
}

type Builder struct {
	settings Settings
}

func NewBuilder(s Settings) *Builder {
	if s.AgentProgram == "" {
		s.AgentProgram = "ssh-agent"
	}
	if s.AddKeyProgram == "" {
		s.AddKeyProgram = "ssh-add"
	}
	if s.Shell == "" {
		s.Shell = "sh"
	}
	return &Builder{settings: s}
}

func (b *Builder) Settings() Settings {
	return b.settings
}

// Build derives the invocation for job. baseEnv is the ambient environment in
// os.Environ form; it is passed through with the playrunner variables layered
// on top. Build performs no I/O.
func (b *Builder) Build(job *domain.Job, secrets domain.Secrets, opts Options, baseEnv []string) (Invocation, error) {
	if job == nil {
		return Invocation{}, errors.NewConfigError("invocation", "job", fmt.Errorf("nil job"))
	}
	if err := job.Validate(); err != nil {
		return Invocation{}, errors.WrapJobError(job.ID, "build", fmt.Errorf("%w: %v", errors.ErrInvalidJobSpec, err))
	}
	if b.settings.Program == "" {
		return Invocation{}, errors.NewConfigError("runner", "program", fmt.Errorf("empty"))
	}

	argv, err := b.args(job, secrets, opts)
	if err != nil {
		return Invocation{}, errors.WrapJobError(job.ID, "build", err)
	}
	if secrets.KeyPath != "" {
		argv = b.wrapWithAgent(argv, secrets.KeyPath)
	}

	return Invocation{
		Argv: argv,
		Dir:  job.Project.LocalPath,
		Env:  b.env(job, baseEnv),
	}, nil
}

func (b *Builder) env(job *domain.Job, baseEnv []string) map[string]string {
	env := make(map[string]string, len(baseEnv)+6)
	for _, kv := range baseEnv {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}

	env[EnvJobID] = job.ID
	env[EnvInventoryID] = job.Inventory.ID
	env[EnvCallbackPlugins] = b.settings.CallbackPluginDir
	env[EnvCallbackEventScript] = b.settings.CallbackEventScript
	if b.settings.Transport != "" {
		env[EnvTransport] = b.settings.Transport
	}
	env[EnvNoColor] = "1"
	return env
}

func (b *Builder) args(job *domain.Job, secrets domain.Secrets, opts Options) ([]string, error) {
	sshUser, sudoUser := usernames(job.Credential, opts)

	args := []string{b.settings.Program, "-i", b.settings.InventoryScript}
	if job.JobType == domain.JobTypeCheck {
		args = append(args, "--check")
	}
	args = append(args, "--user="+sshUser)
	if secrets.Has(domain.FieldSSHPassword) {
		args = append(args, "--ask-pass")
	}
	if job.UseSudo {
		args = append(args, "--sudo")
	}
	args = append(args, "--sudo-user="+sudoUser)
	if secrets.Has(domain.FieldSudoPassword) {
		args = append(args, "--ask-sudo-pass")
	}
	if job.Forks > 0 {
		args = append(args, "--forks="+strconv.Itoa(job.Forks))
	}
	if job.Limit != "" {
		args = append(args, "--limit="+job.Limit)
	}
	if job.Verbosity > 0 {
		args = append(args, "-"+strings.Repeat("v", min(job.Verbosity, maxVerbosity)))
	}
	if len(job.ExtraVars) > 0 {
		vars, err := ExtraVars(job.ExtraVars)
		if err != nil {
			return nil, err
		}
		args = append(args, "--extra-vars="+vars)
	}
	return append(args, job.PlaybookPath()), nil
}

// wrapWithAgent loads the key into a short-lived agent that only lives as long
// as the playbook run.
func (b *Builder) wrapWithAgent(argv []string, keyPath string) []string {
	script := shellquote.Join(b.settings.AddKeyProgram, keyPath) + " && " + shellquote.Join(argv...)
	return []string{b.settings.AgentProgram, b.settings.Shell, "-c", script}
}

func usernames(cred *domain.Credential, opts Options) (string, string) {
	var sshUser, sudoUser string
	if cred != nil {
		sshUser, sudoUser = cred.SSHUsername, cred.SudoUsername
	}
	if opts.SSHUsername != "" {
		sshUser = opts.SSHUsername
	}
	if opts.SudoUsername != "" {
		sudoUser = opts.SudoUsername
	}
	if sshUser == "" {
		sshUser = domain.DefaultUsername
	}
	if sudoUser == "" {
		sudoUser = domain.DefaultUsername
	}
	return sshUser, sudoUser
}

// ExtraVars renders vars as space separated key=value pairs in key order.
// Every pair is shell-quoted on its own so that ansible's splitter sees
// exactly one token per variable whatever the value contains.
func ExtraVars(vars map[string]interface{}) (string, error) {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" || strings.ContainsAny(k, "= \t\n") {
			return "", fmt.Errorf("%w: extra var name %q", errors.ErrInvalidJobSpec, k)
		}
		v, err := renderValue(vars[k])
		if err != nil {
			return "", fmt.Errorf("%w: extra var %s: %v", errors.ErrInvalidJobSpec, k, err)
		}
		pairs = append(pairs, shellquote.Join(k+"="+v))
	}
	return strings.Join(pairs, " "), nil
}

func renderValue(v interface{}) (string, error) {
	switch tv := v.(type) {
	case nil:
		return "", nil
	case string:
		return tv, nil
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(tv)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(tv), nil
	}
}
