// Package driver projects a parsed DSN onto native client configuration
// structs. Nothing here opens a connection or re-encodes a DSN string.
package driver

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/rediwo/redi-dsn/dsn"
	"github.com/rediwo/redi-dsn/logger"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrIncomplete is returned when a record lacks the host or port needed for an address
var ErrIncomplete = errors.New("driver: dsn has no host or port")

// Resolve parses raw and applies project to the result
func Resolve[T any](raw string, project func(dsn.Parsed) (T, error)) (T, error) {
	var zero T

	p, err := dsn.Parse(raw).Require()
	if err != nil {
		logger.Debug("Resolve: %v", err)
		return zero, err
	}

	cfg, err := project(p)
	if err != nil {
		return zero, fmt.Errorf("failed to project %s dsn: %w", protocolOf(p), err)
	}
	logger.Debug("Resolved %s dsn to %T", protocolOf(p), cfg)
	return cfg, nil
}

// Address returns host:port, bracketing IPv6 hosts
func Address(p dsn.Parsed) (string, error) {
	if p.Host == nil || p.Port == nil {
		return "", ErrIncomplete
	}
	return net.JoinHostPort(*p.Host, strconv.Itoa(*p.Port)), nil
}

// MySQLConfig fills a go-sql-driver config with the TCP address and credentials
func MySQLConfig(p dsn.Parsed) (*mysql.Config, error) {
	addr, err := Address(p)
	if err != nil {
		return nil, err
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = addr
	if p.HasCredentials() {
		cfg.User = *p.User
		cfg.Passwd = *p.Password
	}
	return cfg, nil
}

// MongoOptions fills mongo client options with the host and credentials
func MongoOptions(p dsn.Parsed) (*options.ClientOptions, error) {
	addr, err := Address(p)
	if err != nil {
		return nil, err
	}

	opts := options.Client().SetHosts([]string{addr})
	if p.HasCredentials() {
		opts.SetAuth(options.Credential{
			Username:    *p.User,
			Password:    *p.Password,
			PasswordSet: true,
		})
	}
	return opts, nil
}

func protocolOf(p dsn.Parsed) string {
	if p.Protocol == nil {
		return "unknown"
	}
	return *p.Protocol
}
