// Package mssqlsink adapts zone.Accept to a SQL Server table, grounded on
// cli/cmd/config.go's OpenSocks5Sql connector/SOCKS5 wiring.
package mssqlsink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/uuid"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"

	"github.com/dnszone/zonecode/zone"
)

// Open connects to SQL Server, honoring the SQL_SOCKS environment variable
// the same way cli/cmd/config.go's OpenSocks5Sql does, for test/lab
// environments that only allow outbound SOCKS5.
func Open(dsn string) (*sql.DB, error) {
	if !strings.HasPrefix(dsn, "sqlserver://") {
		return nil, errors.New("mssqlsink: expected a sqlserver:// DSN")
	}

	connector, err := mssql.NewConnector(dsn)
	if err != nil {
		return nil, err
	}

	if socksAddr := os.Getenv("SQL_SOCKS"); socksAddr != "" {
		dialer, derr := proxy.SOCKS5("tcp", socksAddr, nil, nil)
		if derr != nil {
			return nil, fmt.Errorf("mssqlsink: could not connect with SOCKS5 to %s: %w", socksAddr, derr)
		}
		ctxDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, errors.New("mssqlsink: SOCKS5 dialer does not support contexts")
		}
		connector.Dialer = ctxDialer
	}

	return sql.OpenDB(connector), nil
}

// Sink batches accepted records and flushes them to table every batchSize
// records (spec's Sink Adapter §4.9 says nothing about batching — this is
// zonescan's own throughput concern layered on top of the engine contract).
type Sink struct {
	db        *sql.DB
	table     string
	batchSize int
	batchID   uuid.UUID
	log       logrus.FieldLogger

	pending []pendingRow
}

type pendingRow struct {
	owner string
	typ   uint16
	class uint16
	ttl   uint32
	rdata []byte
}

// New creates a Sink that inserts into table in batches of batchSize rows,
// tagging every row with a fresh batch correlation id (gofrs/uuid) so a
// partially-failed load can be identified and retried.
func New(db *sql.DB, table string, batchSize int, log logrus.FieldLogger) *Sink {
	if batchSize <= 0 {
		batchSize = 500
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	id, err := uuid.NewV4()
	if err != nil {
		id = uuid.Nil
	}
	return &Sink{db: db, table: table, batchSize: batchSize, batchID: id, log: log}
}

// Accept returns a zone.Accept closure wired to this Sink. It always hands
// back slot 0, since every record is copied into s.pending before Accept
// returns — the caller only needs a one-slot zone.Cache.
func (s *Sink) Accept(ctx context.Context) zone.Accept {
	return func(owner zone.Name, typ zone.Type, class zone.Class, ttl uint32, rdata []byte, user any) (int, error) {
		row := pendingRow{
			owner: owner.String(),
			typ:   uint16(typ),
			class: uint16(class),
			ttl:   ttl,
			rdata: append([]byte(nil), rdata...),
		}
		s.pending = append(s.pending, row)
		if len(s.pending) >= s.batchSize {
			if err := s.flush(ctx); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}
}

// Flush writes any rows accumulated since the last flush. Call it once
// after the parse completes to drain the final partial batch.
func (s *Sink) Flush(ctx context.Context) error {
	return s.flush(ctx)
}

func (s *Sink) flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`insert into %s (batch_id, owner, type, class, ttl, rdata) values (@p1, @p2, @p3, @p4, @p5, @p6)`, s.table))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range s.pending {
		if _, err := stmt.ExecContext(ctx, s.batchID.String(), row.owner, row.typ, row.class, row.ttl, row.rdata); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"batch_id": s.batchID, "rows": len(s.pending)}).Info("mssqlsink: flushed batch")
	s.pending = s.pending[:0]
	return nil
}
