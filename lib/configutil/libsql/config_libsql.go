package configlibsql

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Struct points at either a local sqlite file or a remote libsql
// database, with the local file taking effect when no url is given.
type Struct struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Struct) OpenDB() (*sql.DB, error) {
	if config.Url == "" {
		if config.File == "" {
			return nil, fmt.Errorf("neither a database file nor a url was specified")
		}
		return sql.Open("sqlite", config.File)
	}

	remote, err := url.Parse(config.Url)
	if err != nil {
		return nil, err
	}
	if config.AuthToken != "" {
		query := remote.Query()
		query.Set("authToken", config.AuthToken)
		remote.RawQuery = query.Encode()
	}
	return sql.Open("libsql", remote.String())
}
