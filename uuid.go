package xcode

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GenerateUUID mints a deterministic 24-character UUID from seed: "XX" +
// the first 20 hex characters of the uppercase MD5 digest of seed + "XX".
// If the candidate already appears in existing, a space is appended to
// the seed and minting retries until a fresh UUID is found.
func GenerateUUID(seed string, existing map[string]struct{}) string {
	current := seed
	for {
		candidate := makeUUID(current)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		current += " "
	}
}

func makeUUID(seed string) string {
	sum := md5.Sum([]byte(seed))
	hexStr := strings.ToUpper(hex.EncodeToString(sum[:]))
	return "XX" + hexStr[:20] + "XX"
}
