// Package passcode derives and verifies the one-time codes that gate an
// admin's first login. Codes are a pure function of (identity, key, window
// index), so issuer and verifier agree without storing anything.
package passcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/saideepoki/counselling-app/internal/clock"
)

// CodeLength is the number of hex characters in an issued code.
const CodeLength = 8

var ErrInvalidPasscode = errors.New("invalid passcode")

// Code computes the passcode for an identity key and window index: the first
// 8 hex characters of HMAC-SHA256(key, identity || decimal(windowIndex)),
// uppercased.
func Code(key []byte, identity string, windowIndex int64) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(identity))
	mac.Write([]byte(strconv.FormatInt(windowIndex, 10)))
	sum := mac.Sum(nil)
	return strings.ToUpper(hex.EncodeToString(sum)[:CodeLength])
}

// Authenticator issues and checks passcodes against a rolling window. A code
// is accepted for the window it was issued in and the one after it, so its
// usable lifetime is between one and two window lengths.
type Authenticator struct {
	root   []byte
	window time.Duration
	clk    clock.Clock
}

func NewAuthenticator(rootSecret string, window time.Duration, clk clock.Clock) *Authenticator {
	if window <= 0 {
		window = 5 * time.Minute
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Authenticator{root: []byte(rootSecret), window: window, clk: clk}
}

// identityKey derives a per-identity key from the root secret, so possession
// of one identity's key does not expose any other identity's codes.
func (a *Authenticator) identityKey(identity string) []byte {
	r := hkdf.New(sha256.New, a.root, nil, []byte("passcode:"+identity))
	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(r, key); err != nil {
		// hkdf cannot fail for these parameters before 255*32 bytes.
		panic(err)
	}
	return key
}

func (a *Authenticator) windowIndex(offset int) int64 {
	return a.clk.Now().UnixMilli()/a.window.Milliseconds() + int64(offset)
}

// Derive returns the code for the current window shifted by offset buckets.
func (a *Authenticator) Derive(identity string, offset int) string {
	return Code(a.identityKey(identity), identity, a.windowIndex(offset))
}

// Validate reports nil if provided matches the code of the current or the
// immediately preceding window, ErrInvalidPasscode otherwise.
func (a *Authenticator) Validate(identity, provided string) error {
	provided = strings.ToUpper(strings.TrimSpace(provided))
	key := a.identityKey(identity)
	ok := false
	for _, off := range []int{0, -1} {
		want := Code(key, identity, a.windowIndex(off))
		if subtle.ConstantTimeCompare([]byte(provided), []byte(want)) == 1 {
			ok = true
		}
	}
	if !ok {
		return ErrInvalidPasscode
	}
	return nil
}
