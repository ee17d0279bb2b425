package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dnszone/zonecode/sink/mssqlsink"
	"github.com/dnszone/zonecode/sink/pgsink"
	"github.com/dnszone/zonecode/zone"
)

var loadCmd = &cobra.Command{
	Use:   "load <database> <zonefile>",
	Short: "Parse a master file and load the records into the database named in zonescan.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("need to specify <database> and <zonefile>")
		}
		dbname, zonefile := args[0], args[1]

		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		dbcfg, ok := cfg.Databases[dbname]
		if !ok {
			return fmt.Errorf("database %q not present in zonescan.yaml", dbname)
		}

		origin := originFlag
		if origin == "" {
			origin = cfg.Origin
		}
		if origin == "" {
			return errors.New("--origin or zonescan.yaml's origin is required")
		}
		ttl := cfg.DefaultTTL
		if ttl == 0 || cmd.Flags().Changed("default-ttl") {
			ttl = defaultTTLFlag
		}
		classText := cfg.DefaultClass
		if classText == "" || cmd.Flags().Changed("default-class") {
			classText = defaultClassFlag
		}
		class, err := parseDefaultClass(classText)
		if err != nil {
			return err
		}

		ctx := context.Background()
		logger := logrus.StandardLogger()

		accept, flush, err := openSinkAccept(ctx, dbcfg, logger)
		if err != nil {
			return err
		}

		opt := zone.Options{
			Origin:       origin,
			DefaultTTL:   ttl,
			DefaultClass: class,
			Accept:       accept,
			Cache: &zone.Cache{
				Owners: [][]byte{make([]byte, 255)},
				RDATAs: [][]byte{make([]byte, 65535)},
			},
		}

		parseErr := zone.Parse(zonefile, opt)
		if flushErr := flush(ctx); flushErr != nil && parseErr == nil {
			parseErr = flushErr
		}
		return parseErr
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func openSinkAccept(ctx context.Context, dbcfg DatabaseConfig, logger logrus.FieldLogger) (zone.Accept, func(context.Context) error, error) {
	switch strings.ToLower(dbcfg.Driver) {
	case "mssql", "sqlserver":
		db, err := mssqlsink.Open(dbcfg.Connection)
		if err != nil {
			return nil, nil, err
		}
		s := mssqlsink.New(db, dbcfg.Table, 500, logger)
		return s.Accept(ctx), s.Flush, nil

	case "postgres", "pg":
		pool, err := pgsink.Open(ctx, dbcfg.Connection)
		if err != nil {
			return nil, nil, err
		}
		s := pgsink.New(pool, dbcfg.Table, 500, logger)
		return s.Accept(ctx), s.Flush, nil

	default:
		return nil, nil, fmt.Errorf("unrecognized driver %q (want mssql or postgres)", dbcfg.Driver)
	}
}
