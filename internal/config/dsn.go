package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
	"strings"
)

// DSNValue resolves the effective MySQL DSN: an explicit DSN wins, otherwise
// one is assembled from the individual fields.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	host := valueOr(c.Host, defaultDBHost)
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := valueOr(c.User, defaultDBUser)
	password := valueOr(c.Password, defaultDBPassword)
	name := valueOr(c.Name, defaultDBName)

	params := neturl.Values{}
	params.Set("charset", valueOr(c.Charset, defaultDBCharset))
	params.Set("parseTime", strconv.FormatBool(c.ParseTime))
	params.Set("loc", valueOr(c.Loc, defaultDBLoc))

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		user, password, net.JoinHostPort(host, strconv.Itoa(port)), name, params.Encode())
}

// URLValue resolves the effective Redis URL: an explicit URL wins (a bare
// host:port gets a scheme prepended), otherwise one is assembled from the
// individual fields.
func (c RedisConfig) URLValue() string {
	if trimmed := strings.TrimSpace(c.URL); trimmed != "" {
		if strings.HasPrefix(trimmed, "redis://") || strings.HasPrefix(trimmed, "rediss://") {
			return trimmed
		}
		return "redis://" + trimmed
	}

	host := valueOr(c.Host, defaultRedisHost)
	port := c.Port
	if port == 0 {
		port = defaultRedisPort
	}
	db := c.DB
	if db < 0 {
		db = defaultRedisDB
	}

	scheme := "redis"
	if c.TLS {
		scheme = "rediss"
	}
	u := &neturl.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + strconv.Itoa(db),
	}
	username := strings.TrimSpace(c.Username)
	password := strings.TrimSpace(c.Password)
	switch {
	case username != "" && password != "":
		u.User = neturl.UserPassword(username, password)
	case username != "":
		u.User = neturl.User(username)
	case password != "":
		u.User = neturl.UserPassword("", password)
	}
	return u.String()
}

func valueOr(raw, fallback string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return fallback
}
