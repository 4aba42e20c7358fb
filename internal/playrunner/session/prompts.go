package session

import (
	"fmt"
	"regexp"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
)

// Condition is what one watch iteration observed.
type Condition int

const (
	KeyPassphrase Condition = iota
	BadPassphrase
	SudoPassword
	SSHPassword
	Timeout
	EOF
)

func (c Condition) String() string {
	switch c {
	case KeyPassphrase:
		return "key_passphrase"
	case BadPassphrase:
		return "bad_passphrase"
	case SudoPassword:
		return "sudo_password"
	case SSHPassword:
		return "ssh_password"
	case Timeout:
		return "timeout"
	case EOF:
		return "eof"
	default:
		return "unknown"
	}
}

// IsPrompt reports whether c expects a reply.
func (c Condition) IsPrompt() bool {
	return c <= SSHPassword
}

// SecretField names the password that answers c. An empty name means the
// reply is an empty line.
func (c Condition) SecretField() string {
	switch c {
	case KeyPassphrase:
		return domain.FieldSSHKeyUnlock
	case SudoPassword:
		return domain.FieldSudoPassword
	case SSHPassword:
		return domain.FieldSSHPassword
	default:
		return ""
	}
}

// Match locates a prompt in buffered output.
type Match struct {
	Condition Condition
	Start     int
	End       int
}

// PromptSet recognizes the prompts of one tool version in raw terminal output.
type PromptSet interface {
	// Match returns the prompt that starts earliest in output.
	Match(output []byte) (Match, bool)
}

// Patterns are the regular expressions of the four prompts.
type Patterns struct {
	KeyPassphrase string
	BadPassphrase string
	SudoPassword  string
	SSHPassword   string
}

func DefaultPatterns() Patterns {
	return Patterns{
		KeyPassphrase: `Enter passphrase for .*:`,
		BadPassphrase: `Bad passphrase, try again for .*:`,
		SudoPassword:  `sudo password.*:`,
		SSHPassword:   `SSH password:`,
	}
}

type promptEntry struct {
	condition Condition
	re        *regexp.Regexp
}

// RegexPromptSet matches prompts with regular expressions. When two prompts
// start at the same offset the one listed first in Patterns wins.
type RegexPromptSet struct {
	table []promptEntry
}

// NewRegexPromptSet compiles p. Empty patterns fall back to the defaults.
func NewRegexPromptSet(p Patterns) (*RegexPromptSet, error) {
	def := DefaultPatterns()
	sources := []struct {
		condition Condition
		pattern   string
		fallback  string
	}{
		{KeyPassphrase, p.KeyPassphrase, def.KeyPassphrase},
		{BadPassphrase, p.BadPassphrase, def.BadPassphrase},
		{SudoPassword, p.SudoPassword, def.SudoPassword},
		{SSHPassword, p.SSHPassword, def.SSHPassword},
	}

	set := &RegexPromptSet{}
	for _, src := range sources {
		pattern := src.pattern
		if pattern == "" {
			pattern = src.fallback
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile %s prompt %q: %w", src.condition, pattern, err)
		}
		set.table = append(set.table, promptEntry{condition: src.condition, re: re})
	}
	return set, nil
}

// MustDefaultPromptSet returns the built-in prompt table.
func MustDefaultPromptSet() *RegexPromptSet {
	set, err := NewRegexPromptSet(DefaultPatterns())
	if err != nil {
		panic(err)
	}
	return set
}

func (s *RegexPromptSet) Match(output []byte) (Match, bool) {
	best := Match{Start: -1}
	for _, e := range s.table {
		loc := e.re.FindIndex(output)
		if loc == nil {
			continue
		}
		if best.Start == -1 || loc[0] < best.Start {
			best = Match{Condition: e.condition, Start: loc[0], End: loc[1]}
		}
	}
	return best, best.Start >= 0
}
