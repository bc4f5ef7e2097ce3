package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/keyforge/models"
)

const flagCopy = "copy"

// generateFlags maps flag names to the form field they fill.
var generateFlags = []struct {
	flag  string
	field string
	usage string
	bool  bool
}{
	{flag: "length", field: models.FieldLength, usage: "Passphrase length"},
	{flag: "numbers", field: models.FieldIncludeNumbers, usage: "Include numbers in the passphrase", bool: true},
	{flag: "special", field: models.FieldIncludeSpecial, usage: "Include special characters in the passphrase", bool: true},
	{flag: "exclude", field: models.FieldExcludeChars, usage: "Characters to leave out of the passphrase"},
	{flag: "comment", field: models.FieldComment, usage: "Key comment"},
	{flag: "key-type", field: models.FieldKeyType, usage: "Key type (ssh: ed25519, rsa, ecdsa; pgp: rsa, ecc)"},
	{flag: "key-size", field: models.FieldKeySize, usage: "Key size in bits (ssh, rsa)"},
	{flag: "passphrase", field: models.FieldPassphrase, usage: "Passphrase protecting the private key"},
	{flag: "name", field: models.FieldName, usage: "PGP user name"},
	{flag: "email", field: models.FieldEmail, usage: "PGP user email"},
	{flag: "key-length", field: models.FieldKeyLength, usage: "PGP RSA key length"},
	{flag: "curve", field: models.FieldCurve, usage: "PGP ECC curve"},
	{flag: "expire", field: models.FieldExpireTime, usage: "PGP key expiry (0 never expires)"},
}

var generateCmd = &cobra.Command{
	Use:   "generate <passphrase|ssh|rsa|pgp>",
	Short: "Generate one result and print it",
	Long: `Generate a passphrase or key pair and print it to stdout.

Only the flags given are sent; every other field takes its form default.
Errors are printed to stderr and the command exits with status 1.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"passphrase", "ssh", "rsa", "pgp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseMode(args[0])
		if err != nil {
			return err
		}

		form, err := formFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		copyArtifact, err := cmd.Flags().GetString(flagCopy)
		if err != nil {
			return err
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		return app.Generate(commandContext(cmd), mode, form, copyArtifact, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func registerGenerateFlags(fs *pflag.FlagSet) {
	for _, f := range generateFlags {
		if f.bool {
			fs.Bool(f.flag, false, f.usage)
			continue
		}
		fs.String(f.flag, "", f.usage)
	}
	fs.String(flagCopy, "", "Copy the named artifact (passphrase, public-key, private-key) to the clipboard")
}

// formFromFlags builds the form from the flags that were set explicitly.
func formFromFlags(fs *pflag.FlagSet) (models.FormValues, error) {
	form := models.FormValues{}
	for _, f := range generateFlags {
		if !fs.Changed(f.flag) {
			continue
		}

		if f.bool {
			v, err := fs.GetBool(f.flag)
			if err != nil {
				return nil, fmt.Errorf("error reading flag %q: %w", f.flag, err)
			}
			form[f.field] = strconv.FormatBool(v)
			continue
		}

		v, err := fs.GetString(f.flag)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", f.flag, err)
		}
		form[f.field] = v
	}
	return form, nil
}
