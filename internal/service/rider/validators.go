package rider

import "strings"

const minRiderAge = 18

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidField(value string) bool {
	return strings.TrimSpace(value) != ""
}

func isValidAge(age int) bool {
	return age >= minRiderAge
}

func isValidApplicationStatus(status string) bool {
	switch status {
	case "pending", "active", "cancelled":
		return true
	default:
		return false
	}
}
