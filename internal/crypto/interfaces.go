package crypto

// KeyInspector derives display details from generated public keys. It never
// sees private keys and performs no network or file access.
type KeyInspector interface {
	// Inspect recognises an OpenSSH authorized key line, a PEM encoded
	// public key or an armored OpenPGP public key block and describes it.
	Inspect(publicKey string) (KeyInfo, error)
}

// KeyInfo describes a public key.
type KeyInfo struct {
	// Format is one of FormatOpenSSH, FormatPEM and FormatOpenPGP.
	Format    string
	Algorithm string
	// Bits is the key size, or zero when it cannot be determined.
	Bits int
	// Fingerprint is "SHA256:<base64>" for SSH and PEM keys and the upper
	// case hex v4/v6 fingerprint for OpenPGP keys.
	Fingerprint string
	// KeyID is only set for OpenPGP keys.
	KeyID string
	// Comment is the authorized key comment or the OpenPGP user ID.
	Comment string
}

// Recognised public key formats.
const (
	FormatOpenSSH = "openssh"
	FormatPEM     = "pem"
	FormatOpenPGP = "openpgp"
)
