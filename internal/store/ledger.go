package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Pangolin1100/class-order-system/internal/model"
)

// utf8BOM marks the ledger file as UTF-8 so spreadsheet tools decode the
// multi-byte columns correctly.
const utf8BOM = "\ufeff"

// ledgerHeader is the fixed column order of the ledger file, identical to the
// sheets the previous tooling produced so existing files keep loading.
var ledgerHeader = []string{"時間", "座號", "姓名", "主餐", "飲料", "冰塊", "備註", "領取狀態"}

// Ledger is the file-backed order ledger. Every operation is a fresh
// read/rewrite of the whole file; nothing is cached between interactions.
// Concurrent appenders can overlap on the read-modify-write window and the
// later writer wins, an accepted limitation of the whole-snapshot store.
type Ledger struct {
	path string
}

// NewLedger creates a Ledger backed by the file at path.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// LoadAll reads every persisted record, normalizing the claimed column. A
// missing file is an empty ledger, not an error. A file that exists but
// cannot be read or parsed is an error, and callers must not persist anything
// derived from that failed read.
func (l *Ledger) LoadAll() ([]model.OrderRecord, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.OrderRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	return readRecords(f)
}

// Append loads the current snapshot, adds rec at the end, and rewrites the
// file. The load must succeed first: appending on top of a failed read would
// wipe the existing ledger.
func (l *Ledger) Append(rec model.OrderRecord) error {
	snapshot, err := l.LoadAll()
	if err != nil {
		return err
	}
	return l.Persist(append(snapshot, rec))
}

// Persist rewrites the whole ledger file with the given snapshot, replacing
// all prior content.
func (l *Ledger) Persist(snapshot []model.OrderRecord) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, snapshot); err != nil {
		return err
	}
	if err := os.WriteFile(l.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

func readRecords(r io.Reader) ([]model.OrderRecord, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if len(rows) == 0 {
		return []model.OrderRecord{}, nil
	}

	records := make([]model.OrderRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// recordFromRow tolerates short rows; missing cells read as empty strings.
func recordFromRow(row []string) model.OrderRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return model.OrderRecord{
		Timestamp: cell(0),
		SeatID:    cell(1),
		Name:      cell(2),
		Meal:      cell(3),
		Drink:     cell(4),
		IceLevel:  cell(5),
		Note:      cell(6),
		Claimed:   NormalizeClaimed(cell(7)),
	}
}

// NormalizeClaimed maps the historical on-disk spellings of the claimed flag
// to a boolean. Earlier versions of the ledger recorded it as 已領/未領, as
// boolean text, or not at all; anything unrecognized reads as unclaimed. The
// boolean spellings written by Persist map back to themselves, so reloading a
// freshly written file is a no-op.
func NormalizeClaimed(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "True", "true", "已領":
		return true
	default:
		return false
	}
}

// WriteCSV renders a snapshot in the ledger file format, BOM included. The
// claimed column is written with the capitalized boolean spellings the
// previous tooling used, keeping its files and ours interchangeable.
func WriteCSV(w io.Writer, snapshot []model.OrderRecord) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write ledger BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, rec := range snapshot {
		row := []string{
			rec.Timestamp,
			rec.SeatID,
			rec.Name,
			rec.Meal,
			rec.Drink,
			rec.IceLevel,
			rec.Note,
			claimedText(rec.Claimed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func claimedText(claimed bool) string {
	if claimed {
		return "True"
	}
	return "False"
}
