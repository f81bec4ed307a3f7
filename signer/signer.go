// Package signer computes X-Flashbots-Signature headers for bundle
// submission.
//
// Builders whose signing classification is Required reject unsigned bundles;
// builders with Optional signing may give signed bundles better priority. The
// signature is an ECDSA signature over the keccak hash of the request body,
// prefixed per EIP-191, and is sent as "<address>:<signature>".
package signer

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// HeaderName is the HTTP header carrying the bundle signature.
const HeaderName = "X-Flashbots-Signature"

var (
	// ErrNilPrivateKey is returned when no signing key is provided.
	ErrNilPrivateKey = errors.New("nil private key")
	// ErrMalformedHeader is returned when a signature header is not of the
	// form <address>:<signature>.
	ErrMalformedHeader = errors.New("malformed signature header")
)

// SignRequestBody returns the X-Flashbots-Signature header value for the given
// request body.
func SignRequestBody(body []byte, privateKey *ecdsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", ErrNilPrivateKey
	}

	signature, err := crypto.Sign(signingHash(body), privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign request body: %w", err)
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	return fmt.Sprintf("%s:%s", address.Hex(), hexutil.Encode(signature)), nil
}

// VerifyRequestBody checks a signature header against the request body and
// returns the signing address.
func VerifyRequestBody(body []byte, header string) (common.Address, error) {
	addressHex, signatureHex, found := strings.Cut(header, ":")
	if !found {
		return common.Address{}, ErrMalformedHeader
	}

	signature, err := hexutil.Decode(signatureHex)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	publicKey, err := crypto.SigToPub(signingHash(body), signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("could not recover public key: %w", err)
	}

	recovered := crypto.PubkeyToAddress(*publicKey)
	if recovered != common.HexToAddress(addressHex) {
		return common.Address{}, fmt.Errorf("%w: signer mismatch", ErrMalformedHeader)
	}

	return recovered, nil
}

// signingHash is the EIP-191 text hash of the hex-encoded keccak hash of the
// body, matching what Flashbots-compatible builders verify.
func signingHash(body []byte) []byte {
	return accounts.TextHash([]byte(hexutil.Encode(crypto.Keccak256(body))))
}
