package catalog

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength  = 254
	maxLocalLength  = 64
	maxDomainLength = 255
	phoneDigits     = 10
)

var (
	localPartPattern     = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+$")
	domainSegmentPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// ValidateEmail performs a strict syntactic check of an email address.
func ValidateEmail(email string) bool {
	if len(email) > maxEmailLength {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return false
	}
	if len(local) > maxLocalLength || len(domain) > maxDomainLength {
		return false
	}

	if !localPartPattern.MatchString(local) {
		return false
	}
	if strings.Contains(local, "..") || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for _, segment := range strings.Split(domain, ".") {
		if segment == "" {
			return false
		}
		if strings.HasPrefix(segment, "-") || strings.HasSuffix(segment, "-") {
			return false
		}
		if !domainSegmentPattern.MatchString(segment) {
			return false
		}
	}
	return true
}

// ValidatePhone reports whether phone holds exactly ten digits once every
// other character is stripped.
func ValidatePhone(phone string) bool {
	digits := 0
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits++
		}
	}
	return digits == phoneDigits
}
