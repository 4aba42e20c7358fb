package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPromptSet(t *testing.T) {
	set := MustDefaultPromptSet()

	tests := []struct {
		name   string
		output string
		want   Condition
		found  bool
	}{
		{"key passphrase", "Enter passphrase for /tmp/playrunner-key-1: ", KeyPassphrase, true},
		{"bad passphrase", "Bad passphrase, try again for /tmp/playrunner-key-1: ", BadPassphrase, true},
		{"sudo", "sudo password [defaults to SSH password]: ", SudoPassword, true},
		{"ssh", "SSH password: ", SSHPassword, true},
		{"nothing", "PLAY [all] *********\r\n", 0, false},
		{"incomplete", "Enter passphrase for /tmp/k", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := set.Match([]byte(tt.output))
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, m.Condition)
			}
		})
	}
}

func TestRegexPromptSet_EarliestWins(t *testing.T) {
	set := MustDefaultPromptSet()
	out := []byte("banner\r\nSSH password: \r\nsudo password: ")

	m, ok := set.Match(out)
	require.True(t, ok)
	assert.Equal(t, SSHPassword, m.Condition)
	assert.Equal(t, "SSH password:", string(out[m.Start:m.End]))

	m, ok = set.Match(out[m.End:])
	require.True(t, ok)
	assert.Equal(t, SudoPassword, m.Condition)
}

func TestRegexPromptSet_TieBrokenByTableOrder(t *testing.T) {
	set, err := NewRegexPromptSet(Patterns{
		SudoPassword: `password:`,
		SSHPassword:  `password:`,
	})
	require.NoError(t, err)

	m, ok := set.Match([]byte("password: "))
	require.True(t, ok)
	assert.Equal(t, SudoPassword, m.Condition)
}

func TestRegexPromptSet_CustomPatterns(t *testing.T) {
	set, err := NewRegexPromptSet(Patterns{SSHPassword: `(?i)^.*'s password: `})
	require.NoError(t, err)

	m, ok := set.Match([]byte("deploy@web1's password: "))
	require.True(t, ok)
	assert.Equal(t, SSHPassword, m.Condition)

	// Unset patterns keep their defaults.
	m, ok = set.Match([]byte("Enter passphrase for id_rsa:"))
	require.True(t, ok)
	assert.Equal(t, KeyPassphrase, m.Condition)
}

func TestNewRegexPromptSet_InvalidPattern(t *testing.T) {
	_, err := NewRegexPromptSet(Patterns{SudoPassword: `sudo(`})
	assert.ErrorContains(t, err, "sudo_password")
}

func TestCondition(t *testing.T) {
	assert.Equal(t, "ssh_key_unlock", KeyPassphrase.SecretField())
	assert.Equal(t, "", BadPassphrase.SecretField())
	assert.Equal(t, "sudo_password", SudoPassword.SecretField())
	assert.Equal(t, "ssh_password", SSHPassword.SecretField())
	assert.Equal(t, "", Timeout.SecretField())

	assert.True(t, BadPassphrase.IsPrompt())
	assert.False(t, Timeout.IsPrompt())
	assert.False(t, EOF.IsPrompt())
	assert.Equal(t, "eof", EOF.String())
	assert.Equal(t, "unknown", Condition(99).String())
}
