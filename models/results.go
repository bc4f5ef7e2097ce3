package models

// PassphraseResult is the payload of a successful passphrase generation.
type PassphraseResult struct {
	Passphrase string `json:"passphrase"`
}

// KeyPairResult is the payload of a successful SSH or RSA generation.
// Fields other than the keys are optional and only shown when present.
type KeyPairResult struct {
	PublicKey   string `json:"publicKey"`
	PrivateKey  string `json:"privateKey"`
	KeyType     string `json:"keyType,omitempty"`
	KeySize     int    `json:"keySize,omitempty"`
	Directory   string `json:"directory,omitempty"`
	PrivatePath string `json:"privatePath,omitempty"`
	PublicPath  string `json:"publicPath,omitempty"`
}

// PGPKeyResult is the payload of a successful PGP generation.
type PGPKeyResult struct {
	PublicKey   string `json:"publicKey"`
	PrivateKey  string `json:"privateKey"`
	KeyID       string `json:"keyId"`
	KeyType     string `json:"keyType"`
	KeyLength   int    `json:"keyLength,omitempty"`
	Curve       string `json:"curve,omitempty"`
	ExpireDate  string `json:"expireDate"`
	Directory   string `json:"directory,omitempty"`
	PrivatePath string `json:"privatePath,omitempty"`
	PublicPath  string `json:"publicPath,omitempty"`
}

// Stable identifiers of copyable artifacts.
const (
	ArtifactPassphrase = "passphrase"
	ArtifactPublicKey  = "public-key"
	ArtifactPrivateKey = "private-key"
)
