// Package sharedsecret computes the HMAC credential used by Synapse
// shared-secret registration.
package sharedsecret

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
)

// MAC computes the registration MAC: HMAC-SHA1 keyed with the homeserver's
// registration shared secret over the nonce, username, password and admin
// flag ("admin" or "notadmin") joined with NUL bytes, as a lowercase hex
// digest. The nonce is issued by the server and binds the MAC to a single
// registration exchange.
func MAC(secret, nonce, username, password string, admin bool) string {
	role := "notadmin"
	if admin {
		role = "admin"
	}

	h := hmac.New(sha1.New, []byte(secret))
	h.Write([]byte(nonce))
	h.Write([]byte{0})
	h.Write([]byte(username))
	h.Write([]byte{0})
	h.Write([]byte(password))
	h.Write([]byte{0})
	h.Write([]byte(role))

	return hex.EncodeToString(h.Sum(nil))
}
