//go:build !linux

package fsops

func renameNoReplace(oldpath, newpath string) error {
	return renameCheckExisting(oldpath, newpath)
}
