package usersapimodels

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// NormalizePhone menghapus spasi, tanda hubung dan kurung: "+62812-3456-7890" -> "+6281234567890"
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	return replacer.Replace(strings.TrimSpace(phone))
}

func IsPhoneNumber(phone string) bool {
	return phoneRe.MatchString(NormalizePhone(phone))
}
