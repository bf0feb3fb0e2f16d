package config

import (
	"errors"
	"io/fs"
	"os"

	"trackerctl/internal/failure"
)

// Load reads the record at path merged over Defaults.
//
// found is false when the file does not exist; that is not an error and the
// defaults are returned. A read failure yields an IOFailure and a malformed
// file a ParseFailure; both return the defaults as well.
func Load(path string) (rec Record, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), false, nil
		}
		return Defaults(), false, failure.IO("read config", err)
	}
	rec, err = Decode(data)
	if err != nil {
		return Defaults(), true, failure.Parse("parse "+path, err)
	}
	return rec, true, nil
}

// Save overwrites path with the encoded record.
func Save(path string, rec Record) error {
	data, err := Encode(rec)
	if err != nil {
		return failure.Parse("encode config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return failure.IO("write config", err)
	}
	return nil
}
