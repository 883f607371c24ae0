package store

import (
	"os"
)

// writeFileSync creates path exclusively, writes data and fsyncs it before
// closing, so a later rename publishes fully written content only.
func writeFileSync(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// syncDir flushes directory metadata (renames, new entries) to disk. Not
// every platform supports syncing a directory, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
