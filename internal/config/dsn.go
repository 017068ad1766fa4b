package config

import (
	"errors"
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
	"strings"
)

// DSNValue resolves the MySQL DSN: an explicit DSN wins, otherwise one is
// assembled from the discrete fields. User, password and database name have
// no defaults; a credential-less startup must fail, not limp along.
func (c DatabaseRuntimeConfig) DSNValue() (string, error) {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v, nil
	}

	user := strings.TrimSpace(c.User)
	password := strings.TrimSpace(c.Password)
	name := strings.TrimSpace(c.Name)
	if user == "" || name == "" {
		return "", errors.New("database configuration is required (database.dsn / DATABASE_DSN, or db user+password+name)")
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	charset := strings.TrimSpace(c.Charset)
	if charset == "" {
		charset = defaultDBCharset
	}
	loc := strings.TrimSpace(c.Loc)
	if loc == "" {
		loc = defaultDBLoc
	}

	params := neturl.Values{}
	params.Set("charset", charset)
	params.Set("parseTime", "true")
	params.Set("loc", loc)

	auth := user
	if password != "" {
		auth += ":" + password
	}

	dsn := fmt.Sprintf("%s@tcp(%s)/%s", auth, net.JoinHostPort(host, strconv.Itoa(port)), name)
	return dsn + "?" + params.Encode(), nil
}
