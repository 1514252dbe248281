package t2048

import "fmt"

// ShareText formats the message offered to a sharing collaborator.
func ShareText(score int, url string) string {
	if url == "" {
		return fmt.Sprintf("I scored %d in 2048!", score)
	}
	return fmt.Sprintf("I scored %d in 2048! %s", score, url)
}
