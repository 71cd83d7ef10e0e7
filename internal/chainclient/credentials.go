package chainclient

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/chainward/chainctl/internal/config"
)

// Prompter reads a secret interactively. It is injectable so tests can
// substitute a fixed value without terminal input.
type Prompter interface {
	ReadSecret(label string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(label string) (string, error)

func (f PrompterFunc) ReadSecret(label string) (string, error) {
	return f(label)
}

// TerminalPrompter reads secrets from the terminal with echo disabled.
type TerminalPrompter struct{}

func (TerminalPrompter) ReadSecret(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	defer fmt.Fprintln(os.Stderr)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(raw), nil
}

// Credentials resolves wallet names and wallet credentials. Resolution
// order for secrets: explicit argument, then environment default, then
// interactive prompt. The prompt is never reached when a prior source
// yields a value. Empty prompt input is not rejected locally; the node
// reports whatever error it produces.
type Credentials struct {
	defaultWallet string
	passphrase    string
	encKey        string
	prompter      Prompter
}

// NewCredentials builds a resolver from the loaded configuration.
func NewCredentials(cfg *config.Config, prompter Prompter) *Credentials {
	if prompter == nil {
		prompter = TerminalPrompter{}
	}
	return &Credentials{
		defaultWallet: cfg.DefaultWallet,
		passphrase:    cfg.Passphrase,
		encKey:        cfg.EncKey,
		prompter:      prompter,
	}
}

// WalletName returns the explicit name or the configured default.
func (c *Credentials) WalletName(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return c.defaultWallet
}

// Passphrase resolves the wallet passphrase.
func (c *Credentials) Passphrase(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.passphrase != "" {
		return c.passphrase, nil
	}
	return c.prompter.ReadSecret("Input passphrase:")
}

// EncKey resolves the wallet encryption key.
func (c *Credentials) EncKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.encKey != "" {
		return c.encKey, nil
	}
	return c.prompter.ReadSecret("Input enckey:")
}

// authParam is the [name, credential] pair every wallet-scoped RPC method
// takes as its first positional parameter.
func authParam(name, credential string) []string {
	return []string{name, credential}
}
