package respond

import "regexp"

// dsnPasswordPattern matches the password section of connection strings so
// driver errors that echo the DSN never leak credentials into logs.
var dsnPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dsnPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
