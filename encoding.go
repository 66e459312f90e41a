package datetimeparse

import (
	"fmt"
	"github.com/davejbax/go-datetimeparse/internal/spec"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

func (d LocalDateTime) record() spec.DateTime {
	return spec.DateTime{
		Year:        int32(d.Year),
		Month:       int32(d.Month),
		Day:         int32(d.Day),
		Hour:        int32(d.Hour),
		Minute:      int32(d.Minute),
		Second:      int32(d.Second),
		Millisecond: int32(d.Millisecond),
	}
}

// WriteTo writes d to w as a fixed-layout record of seven little endian 32-bit integers (year, month, day, hour,
// minute, second, millisecond), matching the C interface's `struct pdt_precise_local_date_time` on little endian
// platforms.
func (d LocalDateTime) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	record := d.record()

	if err := struc.Pack(cw, &record); err != nil {
		return cw.Count(), fmt.Errorf("could not pack date-time record: %w", err)
	}

	return cw.Count(), nil
}

// ReadRecord reads one record written by [LocalDateTime.WriteTo]. The fields are returned as stored; they are not
// validated.
func ReadRecord(r io.Reader) (LocalDateTime, error) {
	var record spec.DateTime
	if err := struc.Unpack(r, &record); err != nil {
		return LocalDateTime{}, fmt.Errorf("could not unpack date-time record: %w", err)
	}

	return LocalDateTime{
		LocalDate: LocalDate{
			Year:  int(record.Year),
			Month: int(record.Month),
			Day:   int(record.Day),
		},
		LocalTime: LocalTime{
			Hour:        int(record.Hour),
			Minute:      int(record.Minute),
			Second:      int(record.Second),
			Millisecond: int(record.Millisecond),
		},
	}, nil
}
