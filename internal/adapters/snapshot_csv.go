package adapters

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"envsnap/internal/types"
)

// SnapshotCSVAdapter persists snapshots as a two-column csv file with
// a package,version header. Row order is part of the snapshot contract
// and is preserved exactly on both save and load.
type SnapshotCSVAdapter struct{}

func NewSnapshotCSVAdapter() SnapshotCSVAdapter {
	return SnapshotCSVAdapter{}
}

func (a SnapshotCSVAdapter) Save(snapshot types.Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create snapshot directory").
			WithCause(err)
	}
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	_ = writer.Write([]string{"package", "version"})
	for _, entry := range snapshot.Entries {
		_ = writer.Write([]string{entry.Package, entry.Version})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode snapshot").
			WithCause(err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write snapshot file %s", path)).
			WithCause(err)
	}
	return nil
}

func (a SnapshotCSVAdapter) Load(path string) (types.Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("failed to read snapshot file %s", path)).
			WithCause(err)
	}
	return decodeSnapshotCSV(content)
}

func decodeSnapshotCSV(content []byte) (types.Snapshot, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed snapshot file").
			WithCause(err)
	}
	snapshot := types.Snapshot{}
	for i, record := range records {
		if i == 0 && record[0] == "package" {
			continue
		}
		snapshot.Entries = append(snapshot.Entries, types.SnapshotEntry{
			Package: record[0],
			Version: record[1],
		})
	}
	if len(snapshot.Entries) == 0 {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed snapshot file: no entries")
	}
	return snapshot, nil
}
