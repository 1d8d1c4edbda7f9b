// file: internals/features/academics/subjects/service/subject_code.go
package service

import (
	"fmt"
	"strings"
	"unicode"
)

// BaseSubjectCode: inisial tiap kata dari nama + standard.
// "Social Science" + "10" → "SS-10".
func BaseSubjectCode(name, standard string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
			}
			break
		}
	}
	code := b.String()
	if code == "" {
		code = "SUB"
	}
	standard = strings.TrimSpace(standard)
	if standard == "" {
		return code
	}
	return code + "-" + standard
}

// NextAvailableCode menambahkan counter sampai tidak bentrok dengan
// himpunan kode yang sudah terpakai.
func NextAvailableCode(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken[candidate] {
			return candidate
		}
	}
}
