package internal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PassphraseEnvVar overrides interactive prompting when set, for scripted use.
const PassphraseEnvVar = "KEYBOX_PASSPHRASE"

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}

// ReadPassphrase prompts on stderr and reads a passphrase without echoing it.
// The KEYBOX_PASSPHRASE environment variable takes precedence when set.
func ReadPassphrase(prompt string) ([]byte, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return []byte(env), nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal; set %s to pass the passphrase", PassphraseEnvVar)
	}
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return pass, nil
}

// ReadPassphraseConfirm reads a passphrase twice and verifies both entries match,
// zeroing the rejected copies. Use this on the sealing side so a typo cannot
// produce an unopenable container.
func ReadPassphraseConfirm(prompt, confirmPrompt string) ([]byte, error) {
	pass, err := ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}
	if os.Getenv(PassphraseEnvVar) != "" {
		return pass, nil
	}
	confirm, err := ReadPassphrase(confirmPrompt)
	if err != nil {
		zero(pass)
		return nil, err
	}
	if !bytes.Equal(pass, confirm) {
		zero(pass)
		zero(confirm)
		return nil, errors.New("passphrases do not match")
	}
	zero(confirm)
	return pass, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
