package httpd

import (
	"fmt"

	"github.com/vistack/dashboard/config"

	"github.com/go-ldap/ldap"
)

// ldapSearchUser binds with the read only account and searches the
// username. The caller closes the returned connection.
func ldapSearchUser(username string) (*ldap.Conn, string, error) {
	l, err := ldap.Dial("tcp", config.C.LDAPConf.Server)
	if err != nil {
		return nil, "", err
	}

	if err = l.Bind(config.C.LDAPConf.Binddn, config.C.LDAPConf.Password); err != nil {
		l.Close()
		return nil, "", err
	}

	searchRequest := ldap.NewSearchRequest(
		config.C.LDAPConf.Base,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		fmt.Sprintf("((%s=%s))", config.C.LDAPConf.UID, username),
		[]string{""},
		nil,
	)
	sr, err := l.Search(searchRequest)
	if err != nil {
		l.Close()
		return nil, "", err
	}
	if len(sr.Entries) != 1 {
		l.Close()
		return nil, "", fmt.Errorf("user does not exist or too many entries returned: %d", len(sr.Entries))
	}
	return l, sr.Entries[0].DN, nil
}

// LDAPAuth for auth user
func LDAPAuth(username string, password string) error {
	if password == "" || username == "" {
		return fmt.Errorf("need username or password")
	}

	l, userdn, err := ldapSearchUser(username)
	if err != nil {
		return err
	}
	defer l.Close()

	// Bind as the user to verify their password
	return l.Bind(userdn, password)
}

func LDAPUserExist(username string) bool {
	if username == "" {
		return false
	}

	l, _, err := ldapSearchUser(username)
	if err != nil {
		return false
	}
	l.Close()
	return true
}
