package constants

const (
	AppName   = "acctbal"
	EnvPrefix = "ACCTBAL"
)

const (
	DefaultAccountFile = "account.json"
	DefaultDatabase    = "accounts.db"
	DefaultLogLevel    = "warn"
)

const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

const (
	MaxMinorUnits = 8
)
