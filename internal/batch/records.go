package batch

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-datetimeparse/internal/spec"
	"github.com/itchio/headway/counter"
	"io"
)

// RecordWriter writes fixed-size date-time records to a stream by index, so that record i always starts at byte
// i*[spec.DateTimeSize]. Indices that are skipped are filled with zeroed records.
type RecordWriter struct {
	wrapped *counter.Writer

	next uint32
}

var (
	errNonSequentialRecordWrite = errors.New("cannot write records in non-sequential order or rewrite existing records")
	errRecordSize               = errors.New("record is not the size of a date-time record")
)

func NewRecordWriter(wrapped io.Writer) *RecordWriter {
	return &RecordWriter{wrapped: counter.NewWriter(wrapped)}
}

// WriteRecord writes contents as record number index. contents must write exactly [spec.DateTimeSize] bytes.
func (w *RecordWriter) WriteRecord(index uint32, contents io.WriterTo) error {
	if index < w.next {
		return errNonSequentialRecordWrite
	}

	if err := w.Pad(index); err != nil {
		return err
	}

	written, err := contents.WriteTo(w.wrapped)
	if err != nil {
		return fmt.Errorf("failed to write record %d: %w", index, err)
	}

	if written != spec.DateTimeSize {
		return fmt.Errorf("record %d is %d bytes: %w", index, written, errRecordSize)
	}

	w.next = index + 1

	return nil
}

// Pad writes zeroed records up to, but not including, record number index.
func (w *RecordWriter) Pad(index uint32) error {
	var zeroRecord [spec.DateTimeSize]byte
	for index > w.next {
		if _, err := w.wrapped.Write(zeroRecord[:]); err != nil {
			return fmt.Errorf("failed to write padding prior to record: %w", err)
		}

		w.next += 1
	}

	return nil
}

func (w *RecordWriter) RecordsWritten() uint32 {
	return w.next
}

func (w *RecordWriter) BytesWritten() int64 {
	return w.wrapped.Count()
}
