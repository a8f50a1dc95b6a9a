// Command fselect finds files on local filesystems using an SQL-like query
// language (spec.md §1). Usage:
//
//	fselect name, size from . where size gt 10k into json
package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/freeeve/fselect/eval"
	"github.com/freeeve/fselect/internal/logging"
	"github.com/freeeve/fselect/internal/sink"
	"github.com/freeeve/fselect/parser"
)

const usage = `fselect - find files with an SQL-like query

  fselect COLUMNS [from ROOTS] [where EXPR] [order by COLUMNS] [limit N] [into FORMAT]

Columns:   name, path, size, formatted_size, mode, user, group, uid, gid,
           is_dir, is_file, is_symlink, is_hidden, is_archive, is_audio,
           is_book, is_doc, is_image, is_source, is_video, is_shebang,
           width, height, bitrate, freq, title, artist, album, year, genre,
           modified, created, accessed, has_xattrs, and permission bits.
Functions: lower(), upper(), length(), year(), month(), day(),
           min(), max(), avg(), sum(), count().
Roots:     PATH [mindepth N] [maxdepth N] [depth N] [archives] [symlinks]
           [gitignore]
Formats:   lines (default), list, tabs, csv, json

Examples:
  fselect name, size from /var/log where size gt 1m
  fselect count(*) from . where is_image = true
  fselect name from . where modified = 2020-03 into json
`

func main() {
	if len(os.Args) < 2 || os.Args[1] == "--help" {
		os.Stdout.WriteString(usage)
		os.Exit(0)
	}

	query := strings.Join(os.Args[1:], " ")
	q, err := parser.Parse(query)
	if err != nil {
		sink.QueryError(os.Stdout, err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	ev := eval.New(logging.New())
	if err := ev.Run(q, out); err != nil {
		out.Flush()
		sink.QueryError(os.Stdout, err)
		os.Exit(1)
	}
}
