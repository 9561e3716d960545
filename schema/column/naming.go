package column

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	acronyms = make(map[string]struct{})
	rules    = ruleset()
)

func ruleset() *inflect.Ruleset {
	rs := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS",
		"ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM", "XML",
	} {
		acronyms[w] = struct{}{}
		rs.AddAcronym(w)
	}
	return rs
}

// Pascal converts a column name to an exported Go identifier.
// Words are split on '_', '-' and spaces; known acronyms are upper-cased.
//
//	Pascal("user_id")    // UserID
//	Pascal("firstName")  // FirstName
func Pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	upper := cases.Upper(language.Und)
	var b strings.Builder
	for _, w := range words {
		if u := upper.String(w); isAcronym(u) {
			b.WriteString(u)
			continue
		}
		b.WriteString(rules.Capitalize(w))
	}
	return b.String()
}

func isAcronym(s string) bool {
	_, ok := acronyms[s]
	return ok
}
