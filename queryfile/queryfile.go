// Package queryfile loads query definitions from the filesystem and
// from YAML documents, producing the Definitions value accepted by
// Registry.Load.
//
// The filesystem layout is one directory per dataset, one .sql file per
// query:
//
//	queries/
//	    users/
//	        active.sql
//	        by_id.sql
//	    reports/
//	        monthly.sql
//
// which loads as the datasets "users" (queries "active", "by_id") and
// "reports" (query "monthly"). Files without the .sql extension are
// ignored, as are files in the root of the tree.
package queryfile

import (
	"io/fs"
	"path"
	"strings"

	"github.com/jjeffery/kv"
	"gopkg.in/yaml.v3"

	yesql "github.com/managr/rom-yesql"
)

const sqlExt = ".sql"

// Load reads a directory tree of .sql files from fsys and returns the
// query definitions found. Use os.DirFS to load from disk, or an
// embed.FS to compile the queries into the program.
func Load(fsys fs.FS) (yesql.Definitions, error) {
	defs := yesql.Definitions{}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, sqlExt) {
			return nil
		}
		dataset := path.Dir(p)
		if dataset == "." {
			// not inside a dataset directory
			return nil
		}
		// nested directories become part of the dataset identifier,
		// eg "reporting/monthly/totals.sql" -> dataset "reporting/monthly"
		name := strings.TrimSuffix(path.Base(p), sqlExt)
		text, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if defs[dataset] == nil {
			defs[dataset] = make(map[string]string)
		}
		defs[dataset][name] = strings.TrimSpace(string(text))
		return nil
	})
	if err != nil {
		return nil, kv.Wrap(err, "cannot load query files")
	}
	return defs, nil
}

// LoadYAML parses a YAML document of the form
//
//	users:
//	  active: select * from users where deleted_at is null
//	  by_id: select * from users where id = ?
//
// and returns the query definitions it contains.
func LoadYAML(data []byte) (yesql.Definitions, error) {
	var defs yesql.Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, kv.Wrap(err, "cannot parse query definitions")
	}
	return defs, nil
}
