package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DataURIPrefix prefixes every base64 result.
const DataURIPrefix = "data:image/png;base64,"

// FileMode is the permission used for written images.
const FileMode os.FileMode = 0o644

// Emit serializes raster according to o.Output. It returns a data URI for
// base64 output and the written path for file output.
// The output settings are re-checked because o may not come from a resolver.
func Emit(raster []byte, o Options) (string, error) {
	switch o.Output {
	case OutputBase64:
		return DataURIPrefix + base64.StdEncoding.EncodeToString(raster), nil
	case OutputFile:
		if strings.TrimSpace(o.OutputPath) == "" {
			return "", fmt.Errorf("%w: output_path is required when output is %q", ErrInvalidOutputMode, OutputFile)
		}
		if err := writeFile(o.OutputPath, raster); err != nil {
			return "", fmt.Errorf("%w: write %s: %v", ErrInvalidOutputMode, o.OutputPath, err)
		}
		return o.OutputPath, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutputMode, o.Output)
}

// DecodeDataURI returns the PNG bytes embedded in a data URI produced by Emit.
func DecodeDataURI(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, DataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidData, DataURIPrefix)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return data, nil
}

// writeFile replaces path atomically: the data goes to a temporary file in the
// same directory which is renamed over path. The directory must already exist.
// A symlinked path is written through, so the link survives and its target is
// replaced. An existing file keeps its permissions; new files get FileMode.
// On failure no file is left behind.
func writeFile(path string, data []byte) (err error) {
	target, mode, err := writeTarget(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// writeTarget resolves the file that writeFile replaces and the mode it gets.
func writeTarget(path string) (string, os.FileMode, error) {
	fi, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, FileMode, nil
	}
	if err != nil {
		return "", 0, err
	}

	target := path
	if fi.Mode()&os.ModeSymlink != 0 {
		if target, err = filepath.EvalSymlinks(path); err != nil {
			return "", 0, err
		}
		if fi, err = os.Stat(target); err != nil {
			return "", 0, err
		}
	}
	if !fi.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%s is not a regular file", path)
	}
	return target, fi.Mode().Perm(), nil
}
