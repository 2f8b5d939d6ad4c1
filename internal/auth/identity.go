package auth

import (
	"fmt"
	"strings"

	"github.com/spec-kit/deskboard/internal/domain"
)

// DeriveUser builds a demo identity from an email and role, with no password
// check. The id is stable per email so a returning visitor keeps their
// tickets: a CUST-/AGENT- prefix plus an uppercase-hex checksum of the
// address.
func DeriveUser(email string, role domain.ActorRole) domain.User {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	name := local
	if dot := strings.IndexByte(local, '.'); dot >= 0 {
		name = local[:dot]
	}
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	var sum int
	for _, ch := range email {
		sum += int(ch)
	}
	suffix := strings.ToUpper(fmt.Sprintf("%x", sum))

	prefix := "CUST"
	if role == domain.RoleSupport {
		prefix = "AGENT"
	}

	return domain.User{
		ID:    prefix + "-" + suffix,
		Name:  name,
		Email: email,
		Role:  role,
	}
}
