// Package database provides the SQLite connection used by the history archive.
//
// Open creates the file (and its directory) on first use, applies WAL mode
// and the busy timeout, and checks connectivity. Migrate applies the
// versioned SQL files from an fs.FS, normally migrations.FS.
//
// Usage:
//
//	db, err := database.Open(cfg.History.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx, migrations.FS); err != nil {
//	    return err
//	}
//
// The archive file is created with 0600 permissions. All queries use
// parameterised statements.
package database
