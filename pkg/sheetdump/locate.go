package sheetdump

import (
	"os"
	"path/filepath"
)

// ProgramDir returns the directory holding the running executable.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveWorkbookPath joins name to the first of dirs that contains it.
// If none does, the path under the first directory is returned so that
// opening it reports the missing file.
func ResolveWorkbookPath(name string, dirs ...string) string {
	var candidates []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if len(candidates) == 0 {
		return name
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return candidates[0]
}
