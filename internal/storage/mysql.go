package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// errUnknownDatabase is the MySQL server error number for "Unknown database".
const errUnknownDatabase = 1049

var mysqlDialect = dialect{
	name: DriverMySQL,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS players (
			id CHAR(36) PRIMARY KEY,
			username VARCHAR(50) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			player_id CHAR(36) NOT NULL,
			score INT NOT NULL,
			level INT NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_scores_top (score DESC, id),
			FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
		)`,
	},
	insertPlayer: `INSERT IGNORE INTO players (id, username) VALUES (?, ?)`,
}

// OpenMySQL connects to a MySQL server, creating the database on first use,
// and runs migrations.
func OpenMySQL(ctx context.Context, cfg Config) (*SQLStore, error) {
	db, err := connectMySQL(ctx, cfg, cfg.Database)
	if err != nil {
		var myErr *mysql.MySQLError
		if !errors.As(err, &myErr) || myErr.Number != errUnknownDatabase {
			return nil, err
		}
		if err := createMySQLDatabase(ctx, cfg); err != nil {
			return nil, err
		}
		if db, err = connectMySQL(ctx, cfg, cfg.Database); err != nil {
			return nil, err
		}
	}

	store := &SQLStore{db: db, dialect: mysqlDialect}
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func connectMySQL(ctx context.Context, cfg Config, database string) (*sql.DB, error) {
	connector, err := mysql.NewConnector(cfg.MySQLConfig(database))
	if err != nil {
		return nil, fmt.Errorf("storage: invalid mysql config: %w", err)
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to mysql at %s: %w", cfg.MySQLConfig(database).Addr, err)
	}
	return db, nil
}

func createMySQLDatabase(ctx context.Context, cfg Config) error {
	db, err := connectMySQL(ctx, cfg, "")
	if err != nil {
		return err
	}
	defer db.Close()

	// Identifiers cannot be bound as parameters; quote with backticks.
	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", quoteIdent(cfg.Database))
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("storage: cannot create database %s: %w", cfg.Database, err)
	}
	return nil
}

func quoteIdent(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == '`' {
			out = append(out, '`')
		}
		out = append(out, r)
	}
	return string(out)
}
