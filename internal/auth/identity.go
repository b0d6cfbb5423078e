package auth

import "strings"

// Identity represents an authenticated demo actor.
type Identity struct {
	Email string
	Name  string
}

// DisplayNameFromEmail derives a human-readable name from an email address:
// the local part with separators turned into spaces and words capitalized
// ("demo.user@example.com" -> "Demo User").
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)

	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
