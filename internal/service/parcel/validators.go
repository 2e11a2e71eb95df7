package parcel

import "strings"

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidParcelType(parcelType string) bool {
	switch parcelType {
	case "document", "non-document":
		return true
	default:
		return false
	}
}

func isValidContact(value string) bool {
	return strings.TrimSpace(value) != ""
}
