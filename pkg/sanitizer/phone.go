package sanitizer

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var reLoosePhone = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)

// defaultRegion is used when the customer omits the country prefix.
const defaultRegion = "US"

// SanitizePhone normalizes a customer phone number to E.164. Input that
// does not look like a phone number at all is returned empty so the
// validator rejects it with a field-scoped message.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || !reLoosePhone.MatchString(phone) {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
