package db

import (
	"errors"
	"time"

	"github.com/datagrid/datagrid-apis/log"
	"github.com/gocql/gocql"
)

const DefaultTimeout = 10 * time.Second

// Db represents a connection to a db
type Db struct {
	session Session
}

// ConnectOptions are the cluster settings that can be changed from the command line.
type ConnectOptions struct {
	Username string
	Password string
	// LocalDc is inferred from the first discovered host when empty.
	LocalDc string
	Timeout time.Duration
}

// NewDb creates a session against the given hosts. Credentials are only used when a username is set.
func NewDb(options ConnectOptions, logger log.Logger, hosts ...string) (*Db, error) {
	cluster := gocql.NewCluster(hosts...)
	cluster.PoolConfig.HostSelectionPolicy = NewHostSelectionPolicy(options.LocalDc, func(dc string) {
		logger.Info("local data center inferred", "dc", dc)
	})
	cluster.Timeout = options.Timeout
	if cluster.Timeout <= 0 {
		cluster.Timeout = DefaultTimeout
	}

	if options.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: options.Username,
			Password: options.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, errors.New("failed to create session")
	}

	return &Db{
		session: &GoCqlSession{ref: session},
	}, nil
}

// NewDbWithSession wraps an existing session, mostly used with SessionMock.
func NewDbWithSession(session Session) *Db {
	return &Db{session: session}
}

// Keyspace retrieves the keyspace metadata
func (db *Db) Keyspace(keyspace string) (*gocql.KeyspaceMetadata, error) {
	return db.session.KeyspaceMetadata(keyspace)
}

// Execute executes query and returns a page of the result set
func (db *Db) Execute(query string, options *QueryOptions, values ...interface{}) (ResultSet, error) {
	return db.session.ExecuteIter(query, options, values...)
}

func (db *Db) Close() {
	if closer, ok := db.session.(interface{ Close() }); ok {
		closer.Close()
	}
}
