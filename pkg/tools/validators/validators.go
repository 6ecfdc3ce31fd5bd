package validators

import "regexp"

const (
	passwordValRegexStr = "^.{6,24}$"
	emailValRegexStr    = "^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$"
	usernameValRegexStr = "^[a-zA-Z0-9]{3,24}$"
)

func Password(password string) bool {
	var passwordRegex = regexp.MustCompile(passwordValRegexStr)
	return passwordRegex.MatchString(password)
}

func Email(email string) bool {
	var emailRegex = regexp.MustCompile(emailValRegexStr)
	return emailRegex.MatchString(email)
}

func Username(username string) bool {
	var usernameRegex = regexp.MustCompile(usernameValRegexStr)
	return usernameRegex.MatchString(username)
}
