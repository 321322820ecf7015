package signature

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
)

// Verify checks a base64-encoded detached signature against the
// canonical document bytes. Useful for merchants that archive signed
// documents and audit them later.
func Verify(pub *rsa.PublicKey, data []byte, encodedSig string) error {
	raw, err := base64.StdEncoding.DecodeString(encodedSig)
	if err != nil {
		return ErrKeyInvalid("signature is not valid base64", err)
	}
	digest := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], raw); err != nil {
		return NewSignatureError(ErrCodeSignFailed, "signature does not match document", err)
	}
	return nil
}
