package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cryptguard/keybox/cmd/internal"
	"github.com/cryptguard/keybox/pkg/keybox"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		helpFlag bool
		level    int
		iter     uint32
		saltHex  string
		inFile   string
		outFile  string
	)
	flags := flag.NewFlagSet("keybox", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.IntVarP(&level, "level", "l", 128, "Security level for keygen: 128, 192, or 256.")
	flags.Uint32VarP(&iter, "iter", "n", keybox.MinIterations, "PBKDF2 iteration count for deriving the protection key. Must be at least 10000.")
	flags.StringVar(&saltHex, "salt", "", "Hex-encoded 8-octet salt. A fresh random salt is used when omitted.")
	flags.StringVarP(&inFile, "in", "i", "", "Input file.")
	flags.StringVarP(&outFile, "out", "o", "", "Output file.")
	flags.Usage = func() {
		fmt.Printf(`
keybox protects private keys and threshold secret shares in fixed-format, password-protected containers.
A container embeds its own key-derivation parameters (salt and iteration count), so opening one needs nothing but the container file and the passphrase.
Passphrases are prompted on the terminal, or taken from the %s environment variable for scripted use.

USAGE:  keybox COMMAND [FLAGS]

COMMANDS:
    keygen      Generate a fresh raw private key of 32, 48, or 64 octets (see --level).
    seal-key    Protect a raw private key file in a container.
    open-key    Recover the raw private key from a container.
    seal-share  Protect one secret share file (first octet is the share index, 1-16) in a container.
    open-share  Recover the secret share from a container.

FLAGS:
%s
SECURITY:
    A wrong passphrase and a tampered container are indistinguishable on purpose; both report an authentication failure.
Raise --iter well above the 10000 floor when the container protects long-lived material.
`, internal.PassphraseEnvVar, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if flags.NArg() == 0 {
		internal.Fatal("Missing required COMMAND argument")
	}

	switch cmd := flags.Arg(0); cmd {
	case "keygen":
		keygen(level, outFile)
	case "seal-key":
		sealFile(inFile, outFile, iter, saltHex, keybox.EncodePrivateKey)
	case "open-key":
		openFile(inFile, outFile, keybox.DecodePrivateKey)
	case "seal-share":
		sealFile(inFile, outFile, iter, saltHex, keybox.EncodeSecretShare)
	case "open-share":
		openFile(inFile, outFile, keybox.DecodeSecretShare)
	default:
		internal.Fatal("Unknown command %q", cmd)
	}
}

func keygen(level int, outFile string) {
	if outFile == "" {
		internal.Fatal("keygen requires --out")
	}
	privkey, err := keybox.NewPrivateKey(keybox.Level(level))
	if err != nil {
		internal.Fatal("Failed to generate private key: %v", err)
	}
	defer keybox.Wipe(privkey)
	if err := os.WriteFile(outFile, privkey, 0600); err != nil {
		internal.Fatal("Failed to write %s: %v", outFile, err)
	}
	internal.Echo("Wrote a fresh %d-octet private key to %s", len(privkey), outFile)
}

type encodeFunc func(payload, password []byte, iterations uint32, salt keybox.Salt) ([]byte, error)

func sealFile(inFile, outFile string, iter uint32, saltHex string, encode encodeFunc) {
	if inFile == "" || outFile == "" {
		internal.Fatal("Sealing requires both --in and --out")
	}
	payload, err := os.ReadFile(inFile)
	if err != nil {
		internal.Fatal("Failed to read %s: %v", inFile, err)
	}
	defer keybox.Wipe(payload)

	salt, err := resolveSalt(saltHex)
	if err != nil {
		internal.Fatal("%v", err)
	}
	pass, err := internal.ReadPassphraseConfirm("Passphrase: ", "Confirm passphrase: ")
	if err != nil {
		internal.Fatal("Failed to read passphrase: %v", err)
	}
	defer keybox.Wipe(pass)

	cont, err := encode(payload, pass, iter, salt)
	if err != nil {
		internal.Fatal("Failed to seal %s: %v", inFile, err)
	}
	if err := os.WriteFile(outFile, cont, 0644); err != nil {
		internal.Fatal("Failed to write %s: %v", outFile, err)
	}
	internal.Echo("Sealed %s into a %d-octet container at %s", inFile, len(cont), outFile)
}

type decodeFunc func(container, password []byte) ([]byte, error)

func openFile(inFile, outFile string, decode decodeFunc) {
	if inFile == "" || outFile == "" {
		internal.Fatal("Opening requires both --in and --out")
	}
	cont, err := os.ReadFile(inFile)
	if err != nil {
		internal.Fatal("Failed to read %s: %v", inFile, err)
	}
	pass, err := internal.ReadPassphrase("Passphrase: ")
	if err != nil {
		internal.Fatal("Failed to read passphrase: %v", err)
	}
	defer keybox.Wipe(pass)

	payload, err := decode(cont, pass)
	if err != nil {
		internal.Fatal("Failed to open %s: %v", inFile, err)
	}
	defer keybox.Wipe(payload)
	if err := os.WriteFile(outFile, payload, 0600); err != nil {
		internal.Fatal("Failed to write %s: %v", outFile, err)
	}
	internal.Echo("Recovered %d octets from %s to %s", len(payload), inFile, outFile)
}

func resolveSalt(saltHex string) (keybox.Salt, error) {
	if saltHex == "" {
		return keybox.NewSalt()
	}
	raw, err := hex.DecodeString(saltHex)
	if err != nil {
		return keybox.Salt{}, fmt.Errorf("--salt must be a hex string: %v", err)
	}
	if len(raw) != keybox.SaltSize {
		return keybox.Salt{}, fmt.Errorf("--salt must decode to exactly %d octets, got %d", keybox.SaltSize, len(raw))
	}
	var salt keybox.Salt
	copy(salt[:], raw)
	return salt, nil
}
