package validators

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var hashPattern = regexp.MustCompile(`^[a-fA-F0-9]+$`)

// IndicatorValueValidation validates the indicator value based on the indicator type
// (ip, domain, url, hash or keyword).
func IndicatorValueValidation(fl validator.FieldLevel) bool {
	indicatorType := fl.Parent().FieldByName("Type").String()
	value := fl.Field().String()

	switch indicatorType {
	case "ip":
		return net.ParseIP(value) != nil
	case "domain":
		return strings.Contains(value, ".") && !strings.ContainsAny(value, " /")
	case "url":
		parsed, err := url.Parse(value)
		return err == nil && parsed.Scheme != "" && parsed.Host != ""
	case "hash":
		length := len(value)
		return hashPattern.MatchString(value) && (length == 32 || length == 40 || length == 64)
	case "keyword":
		return strings.TrimSpace(value) != ""
	default:
		return false
	}
}
