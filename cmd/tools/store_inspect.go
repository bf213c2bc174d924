// Command store_inspect dumps the Badger store as a table, one row per
// key under the given prefix. It opens the store read-only so it can run
// against a live server.
package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	DBPath   string `envconfig:"BADGER_FILEPATH" required:"true"`
	Prefix   string `envconfig:"INSPECT_PREFIX" default:"group:"`
	MaxValue int    `envconfig:"INSPECT_MAX_VALUE" default:"80"`
}

func main() {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("config error: ", err)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Cyan.Printf("store: %s  prefix: %s\n\n", cfg.DBPath, cfg.Prefix)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Size", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(cfg.Prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{
					key,
					strings.SplitN(key, ":", 2)[0],
					strconv.Itoa(len(v)),
					snippet(v, cfg.MaxValue),
				})
				rows++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	color.Green.Printf("\n%d keys\n", rows)
}

// snippet compacts JSON values into a single trimmed line; raw values
// (index entries hold plain strings) pass through as-is.
func snippet(v []byte, max int) string {
	out := string(v)
	var compact map[string]any
	if err := json.Unmarshal(v, &compact); err == nil {
		if data, err := json.Marshal(compact); err == nil {
			out = string(data)
		}
	}
	if len(out) > max {
		out = out[:max] + "…"
	}
	return out
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
