package fsops

import "os"

// renameCheckExisting refuses to replace newpath, then renames. There is a
// window between the check and the rename; renameNoReplace avoids it where
// the platform allows.
func renameCheckExisting(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrExist}
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.Rename(oldpath, newpath)
}
