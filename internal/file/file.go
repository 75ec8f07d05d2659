package file

import "os"

// Exists returns true if a file exists at the specified path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
