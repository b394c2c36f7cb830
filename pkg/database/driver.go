package database

import (
	"fmt"
	"net/url"
	"strings"
)

type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
)

// DriverFor picks the backend from the scheme of a connection URL.
func DriverFor(rawURL string) (Driver, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("database: invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "":
		return "", fmt.Errorf("database: URL has no scheme")
	default:
		return "", fmt.Errorf("database: unsupported scheme %q", u.Scheme)
	}
}
