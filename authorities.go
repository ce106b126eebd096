package auth

// AuthorityPrefix is prepended to role names when deriving claim strings
const AuthorityPrefix = "ROLE_"

// DefaultAuthority is granted when an account has no role assignments.
// This is policy, not a data error.
const DefaultAuthority = AuthorityPrefix + "USER"

// Authorities derives the authority strings carried in a token's roles
// claim from the account's role assignments.
func Authorities(user *User) []string {
	if user == nil || len(user.Roles) == 0 {
		return []string{DefaultAuthority}
	}

	authorities := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		if role == nil || role.Name == "" {
			continue
		}
		authorities = append(authorities, AuthorityPrefix+role.Name)
	}

	if len(authorities) == 0 {
		return []string{DefaultAuthority}
	}

	return authorities
}
