package tron

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// Mainnet address constants.
const (
	// AddressPrefix is the first character of every base58 mainnet address.
	AddressPrefix = 'T'
	// AddressLength is the length of a base58 mainnet address.
	AddressLength = 34
	// addressPrefixByte is the version byte of the decoded payload.
	addressPrefixByte = 0x41
	// decodedLength is version byte + 20-byte account + 4-byte checksum.
	decodedLength = 25
	// checksumLength is the trailing double-sha256 checksum size.
	checksumLength = 4
)

// ValidAddress reports whether s decodes as a base58check TRON address:
// 25 bytes, version byte 0x41, trailing 4 bytes equal to the first 4 bytes
// of sha256(sha256(payload)).
func ValidAddress(s string) bool {
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	if len(raw) != decodedLength || raw[0] != addressPrefixByte {
		return false
	}

	payload := raw[:decodedLength-checksumLength]
	checksum := raw[decodedLength-checksumLength:]

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	for i := 0; i < checksumLength; i++ {
		if checksum[i] != second[i] {
			return false
		}
	}
	return true
}
