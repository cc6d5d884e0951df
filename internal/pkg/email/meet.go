package email

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateMeetLink produces a placeholder classroom link in the
// xxx-yyyy-zzz shape Google Meet uses. Admins can override it with a real
// link during approval.
func GenerateMeetLink() string {
	return fmt.Sprintf("https://meet.google.com/%s-%s-%s",
		randomCode(3), randomCode(4), randomCode(3))
}

func randomCode(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			result[i] = chars[i%len(chars)]
			continue
		}
		result[i] = chars[n.Int64()]
	}
	return string(result)
}
