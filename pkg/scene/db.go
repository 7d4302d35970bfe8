package scene

import (
	"database/sql"
	"fmt"

	"github.com/jeff-blank/svgwriter/pkg/svg"
	log "github.com/sirupsen/logrus"
)

// PointSource resolves a shape's query into a point series.
type PointSource interface {
	Points(query string) ([]svg.Point, error)
}

// DB reads point series from SQL. The driver named by the "type" key must
// be registered by the caller (the commands blank-import lib/pq).
type DB struct {
	dbh *sql.DB
}

// DSN builds a connection URL from the database section of the config.
func DSN(dbconfig map[string]string) string {
	return dbconfig["type"] + "://" + dbconfig["username"] + ":" +
		dbconfig["password"] + "@" + dbconfig["host"] + "/" +
		dbconfig["name"] + dbconfig["connect_opts"]
}

func Open(dbconfig map[string]string) (*DB, error) {
	dbh, err := sql.Open(dbconfig["type"], DSN(dbconfig))
	if err != nil {
		return nil, fmt.Errorf("sql.Open(): %w", err)
	}
	return &DB{dbh: dbh}, nil
}

// NewDB wraps an already open handle.
func NewDB(dbh *sql.DB) *DB {
	return &DB{dbh: dbh}
}

func (d *DB) Close() error {
	return d.dbh.Close()
}

// Points runs query, which must return two numeric columns (x, y), and
// returns the rows in the order the database produced them.
func (d *DB) Points(query string) ([]svg.Point, error) {
	log.Debug(query)
	rows, err := d.dbh.Query(query)
	if err != nil {
		return nil, fmt.Errorf("dbh.Query(): %w", err)
	}
	defer rows.Close()

	var points []svg.Point
	for rows.Next() {
		var x, y float64
		if err := rows.Scan(&x, &y); err != nil {
			return nil, fmt.Errorf("rows.Scan(): %w", err)
		}
		points = append(points, svg.Pt(x, y))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err(): %w", err)
	}
	return points, nil
}
